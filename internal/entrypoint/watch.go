package entrypoint

import (
	"context"
	"errors"
	"time"

	"github.com/cebix/library/internal/scheduler"
	"github.com/cebix/library/internal/tasks"
)

// ErrTasksDisabled is returned by RunWorkers when TASKS_ENABLED is false.
var ErrTasksDisabled = errors.New("task queue is disabled")

// RunWorkers starts the task queue and the scheduler and blocks until ctx is
// done. Shutdown waits up to SHUTDOWN_TIMEOUT_IN_SECONDS for running tasks.
func RunWorkers(ctx context.Context, app *App) error {
	cfg := app.Config
	logger := app.Log

	if !cfg.Tasks.Enabled {
		return ErrTasksDisabled
	}

	taskClient, err := tasks.NewClient(tasks.FromSettings(cfg.Tasks), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := taskClient.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing task client")
		}
	}()

	var pruner tasks.AuditPruner
	if app.Audit != nil {
		pruner = app.Audit
	}
	taskClient.Register(
		tasks.NewExportCatalogQueue(app.Exporter(cfg.Export.Dir, false), logger),
		tasks.NewPruneAuditQueue(pruner, logger),
	)

	sched := scheduler.New(taskClient, logger)
	for _, job := range jobs(app) {
		if err := sched.Add(job); err != nil {
			return err
		}
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	go taskClient.Start(workerCtx)
	sched.Start(ctx)

	logger.Info().Msg("Watching catalog, press Ctrl+C to stop")
	<-ctx.Done()

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	logger.Info().Dur("timeout", timeout).Msg("Shutting down")

	sched.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	taskClient.Stop(shutdownCtx)

	return nil
}

func jobs(app *App) []scheduler.Job {
	var out []scheduler.Job
	if app.Config.Export.Enabled {
		out = append(out, scheduler.Job{
			Name:     "export",
			Schedule: app.Config.Export.Schedule,
			Task:     tasks.ExportCatalogTask{Trigger: "schedule"},
		})
	}
	if app.Audit != nil && app.Config.Audit.CleanupSchedule != "" {
		out = append(out, scheduler.Job{
			Name:     "prune-audit",
			Schedule: app.Config.Audit.CleanupSchedule,
			Task:     tasks.PruneAuditTask{RetentionDays: app.Config.Audit.RetentionDays},
		})
	}
	return out
}
