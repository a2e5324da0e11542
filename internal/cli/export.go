package cli

import (
	"context"
	"flag"
	"path/filepath"
)

// ExportCommand writes the catalog as Obsidian-compatible markdown.
type ExportCommand struct {
	env
	Dir      string
	Snapshot bool
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.StringVar(&cmd.Dir, "dir", "", "Output directory (default: EXPORT_DIR)")
	fs.BoolVar(&cmd.Snapshot, "snapshot", false, "Also write a JSON snapshot of the catalog")
	fs.Usage = usage("export", "[-dir <path>] [-snapshot]",
		"Export every author and book to markdown files.", fs.PrintDefaults)

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	dir := cmd.Dir
	if dir == "" {
		dir = app.Config.Export.Dir
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return err
	}

	result, err := app.Exporter(dir, cmd.Snapshot).Export(ctx)
	if err != nil {
		return err
	}
	cmd.printf("Exported %d authors and %d books to %s (%d files)\n",
		result.AuthorsExported, result.BooksExported, dir, result.FilesWritten)
	return nil
}
