// Package cli implements the subcommands of the library binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cebix/library/internal/entrypoint"
)

// Command is one subcommand of the library binary.
type Command interface {
	ParseFlags(args []string) error
	Run(ctx context.Context) error
}

// Commands maps subcommand names to their constructors.
var Commands = map[string]func() Command{
	"demo":          func() Command { return NewDemoCommand() },
	"add-author":    func() Command { return NewAddAuthorCommand() },
	"update-author": func() Command { return NewUpdateAuthorCommand() },
	"delete-author": func() Command { return NewDeleteAuthorCommand() },
	"find-author":   func() Command { return NewFindAuthorCommand() },
	"add-book":      func() Command { return NewAddBookCommand() },
	"update-book":   func() Command { return NewUpdateBookCommand() },
	"delete-book":   func() Command { return NewDeleteBookCommand() },
	"find-book":     func() Command { return NewFindBookCommand() },
	"list":          func() Command { return NewListCommand() },
	"export":        func() Command { return NewExportCommand() },
	"prune-audit":   func() Command { return NewPruneAuditCommand() },
	"watch":         func() Command { return NewWatchCommand() },
}

// env is embedded by every command. App is opened from the environment when
// left nil; Out defaults to stdout.
type env struct {
	App *entrypoint.App
	Out io.Writer
}

// use points the command at app and out instead of the environment.
func (e *env) use(app *entrypoint.App, out io.Writer) {
	e.App = app
	e.Out = out
}

func (e *env) open() (*entrypoint.App, func(), error) {
	if e.App != nil {
		return e.App, func() {}, nil
	}

	app, err := entrypoint.Load()
	if err != nil {
		return nil, nil, err
	}
	return app, func() {
		if err := app.Close(); err != nil {
			app.Log.Error().Err(err).Msg("Error closing database")
		}
	}, nil
}

func (e *env) printf(format string, args ...any) {
	out := e.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, args...)
}

// usage prints a header line and the flag defaults of fs.
func usage(name, synopsis, description string, printDefaults func()) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s %s\n\n", os.Args[0], name, synopsis)
		fmt.Fprintf(os.Stderr, "%s\n\n", description)
		fmt.Fprintf(os.Stderr, "Options:\n")
		printDefaults()
	}
}
