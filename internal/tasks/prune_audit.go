package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog"
)

const defaultAuditRetentionDays = 30

// AuditPruner deletes audit events older than a retention period.
type AuditPruner interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
}

// PruneAuditTask removes audit events older than RetentionDays.
type PruneAuditTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for audit pruning.
func (t PruneAuditTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "prune_audit_events",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration: 24 * time.Hour,
			Data:     &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// Retention is the age past which events are deleted.
func (t PruneAuditTask) Retention() time.Duration {
	days := t.RetentionDays
	if days <= 0 {
		days = defaultAuditRetentionDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// PruneAuditProcessor creates the processor for PruneAuditTask.
func PruneAuditProcessor(pruner AuditPruner, logger zerolog.Logger) backlite.QueueProcessor[PruneAuditTask] {
	return func(ctx context.Context, task PruneAuditTask) error {
		if pruner == nil {
			return errors.New("audit pruner not configured")
		}

		deleted, err := pruner.DeleteOldEvents(task.Retention())
		if err != nil {
			return fmt.Errorf("prune audit events: %w", err)
		}

		logger.Info().
			Int64("deleted", deleted).
			Dur("retention", task.Retention()).
			Msg("Pruned audit events")
		return nil
	}
}

// NewPruneAuditQueue creates the backlite queue for PruneAuditTask.
func NewPruneAuditQueue(pruner AuditPruner, logger zerolog.Logger) backlite.Queue {
	return backlite.NewQueue(PruneAuditProcessor(pruner, logger))
}
