package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/cebix/library/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

var descriptions = map[string]string{
	"demo":          "Add sample authors and books, list them and clean up",
	"add-author":    "Add an author",
	"update-author": "Update fields of an author",
	"delete-author": "Delete an author without books",
	"find-author":   "Print an author and their books",
	"add-book":      "Add a book to a stored author",
	"update-book":   "Update fields of a book",
	"delete-book":   "Delete a book",
	"find-book":     "Print a book",
	"list":          "List the whole catalog",
	"export":        "Export the catalog to markdown",
	"prune-audit":   "Delete old audit events",
	"watch":         "Run scheduled exports and audit cleanup",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "-h", "--help", "help":
		printUsage()
		return
	case "version", "--version":
		fmt.Printf("library %s (%s)\n", Version, Commit)
		return
	}

	newCommand, ok := cli.Commands[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	cmd := newCommand()
	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func printUsage() {
	names := make([]string, 0, len(cli.Commands))
	for name := range cli.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-15s %s\n", name, descriptions[name])
	}
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from the environment, .env and .env.local.\n")
	fmt.Fprintf(os.Stderr, "Use '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
