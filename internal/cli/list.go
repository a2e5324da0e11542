package cli

import (
	"context"
	"encoding/json"
	"flag"
)

// ListCommand prints the catalog.
type ListCommand struct {
	env
	Author string
	JSON   bool
}

func NewListCommand() *ListCommand {
	return &ListCommand{}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.StringVar(&cmd.Author, "author", "", "Only list the books of this author")
	fs.BoolVar(&cmd.JSON, "json", false, "Print the whole catalog as JSON")
	fs.Usage = usage("list", "[-author <name>] [-json]", "List authors and books.", fs.PrintDefaults)

	return fs.Parse(args)
}

func (cmd *ListCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	if cmd.Author != "" {
		books, err := app.Library.GetBooksOfAuthor(ctx, cmd.Author)
		if err != nil {
			return err
		}
		for _, book := range books {
			cmd.printf("%s\n", &book)
		}
		return nil
	}

	catalog, err := app.Library.GetAllBooksAndAuthors(ctx)
	if err != nil {
		return err
	}

	if cmd.JSON {
		data, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return err
		}
		cmd.printf("%s\n", data)
		return nil
	}

	cmd.printf("Authors (%d):\n", len(catalog.Authors))
	for _, author := range catalog.Authors {
		cmd.printf("  %s\n", &author)
	}
	cmd.printf("\nBooks (%d):\n", len(catalog.Books))
	for _, book := range catalog.Books {
		cmd.printf("  %s\n", &book)
	}
	return nil
}
