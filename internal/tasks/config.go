package tasks

import (
	"time"

	"github.com/cebix/library/internal/config"
)

// Config holds configuration for the task queue system.
type Config struct {
	// DatabasePath is the sqlite file backing the queue. It is kept apart
	// from the catalog so workers never contend with catalog writes.
	DatabasePath string

	// Workers is the number of concurrent task workers. Default: 2
	Workers int

	// ReleaseAfter is when stuck tasks are released back to queue. Default: 15m
	ReleaseAfter time.Duration

	// CleanupInterval is how often to clean up completed tasks. Default: 1h
	CleanupInterval time.Duration
}

// DefaultConfig returns the queue settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DatabasePath:    config.DefaultTasksDatabasePath,
		Workers:         2,
		ReleaseAfter:    15 * time.Minute,
		CleanupInterval: time.Hour,
	}
}

// FromSettings builds a Config from the TASK_* settings, keeping defaults
// for the values left at zero.
func FromSettings(s config.Tasks) Config {
	cfg := DefaultConfig()
	if s.DatabasePath != "" {
		cfg.DatabasePath = s.DatabasePath
	}
	if s.Workers > 0 {
		cfg.Workers = s.Workers
	}
	if s.ReleaseAfter > 0 {
		cfg.ReleaseAfter = s.ReleaseAfter
	}
	if s.CleanupInterval > 0 {
		cfg.CleanupInterval = s.CleanupInterval
	}
	return cfg
}
