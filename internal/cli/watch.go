package cli

import (
	"context"
	"flag"

	"github.com/cebix/library/internal/entrypoint"
)

// WatchCommand runs scheduled exports and audit retention until interrupted.
type WatchCommand struct {
	env
}

func NewWatchCommand() *WatchCommand {
	return &WatchCommand{}
}

func (cmd *WatchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.Usage = usage("watch", "", "Run scheduled exports (EXPORT_SCHEDULE) and audit cleanup "+
		"(AUDIT_CLEANUP_SCHEDULE) until interrupted.", fs.PrintDefaults)

	return fs.Parse(args)
}

func (cmd *WatchCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	return entrypoint.RunWorkers(ctx, app)
}
