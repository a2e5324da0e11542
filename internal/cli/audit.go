package cli

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/cebix/library/internal/entrypoint"
)

var errAuditDisabled = errors.New("audit trail is disabled (AUDIT_ENABLED=false)")

func printHistory(e *env, app *entrypoint.App, entityType, key string) error {
	if app.Audit == nil {
		return errAuditDisabled
	}

	events, err := app.Audit.History(entityType, key)
	if err != nil {
		return err
	}

	e.printf("\nHistory:\n")
	for _, event := range events {
		line := event.CreatedAt.Format(time.DateTime) + "  " + event.Action + "  " + string(event.Status)
		if event.ErrorMsg != "" {
			line += "  " + event.ErrorMsg
		}
		e.printf("  %s\n", line)
	}
	return nil
}

// PruneAuditCommand deletes audit events past their retention.
type PruneAuditCommand struct {
	env
	Days int
}

func NewPruneAuditCommand() *PruneAuditCommand {
	return &PruneAuditCommand{}
}

func (cmd *PruneAuditCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("prune-audit", flag.ContinueOnError)
	fs.IntVar(&cmd.Days, "days", 0, "Keep events younger than this many days (default: AUDIT_RETENTION_DAYS)")
	fs.Usage = usage("prune-audit", "[-days <n>]", "Delete old audit events.", fs.PrintDefaults)

	return fs.Parse(args)
}

func (cmd *PruneAuditCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	if app.Audit == nil {
		return errAuditDisabled
	}

	days := cmd.Days
	if days <= 0 {
		days = app.Config.Audit.RetentionDays
	}

	deleted, err := app.Audit.DeleteOldEvents(time.Duration(days) * 24 * time.Hour)
	if err != nil {
		return err
	}
	cmd.printf("Deleted %d audit events older than %d days\n", deleted, days)
	return nil
}
