// Package scheduler turns cron schedules into background tasks.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// ErrUnknownJob is returned by RunNow and NextRun for a name never added.
var ErrUnknownJob = errors.New("unknown job")

// Enqueuer hands tasks to the background queue.
type Enqueuer interface {
	Enqueue(ctx context.Context, task backlite.Task) error
}

// Job enqueues Task every time Schedule fires.
type Job struct {
	Name     string
	Schedule string
	Task     backlite.Task
}

// Scheduler manages the periodic maintenance jobs of the catalog.
type Scheduler struct {
	queue Enqueuer
	log   zerolog.Logger

	cron      *cron.Cron
	jobs      map[string]Job
	mu        sync.RWMutex
	isRunning bool
	ctx       context.Context
}

// New creates a scheduler that enqueues into queue.
func New(queue Enqueuer, logger zerolog.Logger) *Scheduler {
	logger = logger.With().Str("component", "scheduler").Logger()
	return &Scheduler{
		queue: queue,
		log:   logger,
		cron:  cron.New(cron.WithParser(parser), cron.WithLogger(cronLogger{log: logger})),
		jobs:  make(map[string]Job),
		ctx:   context.Background(),
	}
}

// Add registers a job. The schedule is validated immediately.
func (s *Scheduler) Add(job Job) error {
	if err := ValidateCronSchedule(job.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s' for %s: %w", job.Schedule, job.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[job.Name]; ok {
		return fmt.Errorf("job %s already scheduled", job.Name)
	}

	if _, err := s.cron.AddFunc(job.Schedule, func() { s.fire(job) }); err != nil {
		return fmt.Errorf("failed to schedule %s: %w", job.Name, err)
	}
	s.jobs[job.Name] = job

	s.log.Info().
		Str("job", job.Name).
		Str("schedule", job.Schedule).
		Str("description", DescribeSchedule(job.Schedule)).
		Msg("Job scheduled")
	return nil
}

// Start runs the cron loop until Stop is called or ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}

	s.ctx = ctx
	s.cron.Start()
	s.isRunning = true
	s.log.Info().Int("jobs", len(s.jobs)).Msg("Scheduler started")

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
}

// Stop waits for running jobs and stops the cron loop.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.log.Info().Msg("Scheduler stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// RunNow enqueues the task of the named job immediately.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.RLock()
	job, ok := s.jobs[name]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return s.queue.Enqueue(ctx, job.Task)
}

// NextRun returns when the named job fires next. It is nil while the
// scheduler is stopped.
func (s *Scheduler) NextRun(name string) (*time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	if !s.isRunning {
		return nil, nil
	}

	next, err := NextRunTime(job.Schedule, time.Now())
	if err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *Scheduler) fire(job Job) {
	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()

	if err := s.queue.Enqueue(ctx, job.Task); err != nil {
		s.log.Error().Err(err).Str("job", job.Name).Msg("Failed to enqueue scheduled task")
		return
	}
	s.log.Debug().Str("job", job.Name).Msg("Enqueued scheduled task")
}

// cronLogger routes robfig/cron's logging to zerolog.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
