package cli

import (
	"context"
	"flag"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/library"
)

// AddAuthorCommand saves a new author or updates the one with the same name.
type AddAuthorCommand struct {
	env
	Name  string
	Age   optionalInt
	Genre string
}

func NewAddAuthorCommand() *AddAuthorCommand {
	return &AddAuthorCommand{}
}

func (cmd *AddAuthorCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add-author", flag.ContinueOnError)
	fs.StringVar(&cmd.Name, "name", "", "Author's name (required)")
	fs.Var(&cmd.Age, "age", "Author's age, 0 to 120")
	fs.StringVar(&cmd.Genre, "genre", "", "Author's favourite genre")
	fs.Usage = usage("add-author", "-name <name> -age <age> -genre <genre>",
		"Add an author to the catalog.", fs.PrintDefaults)

	if err := fs.Parse(args); err != nil {
		return err
	}
	return required("name", cmd.Name)
}

func (cmd *AddAuthorCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	author := &entities.Author{Name: cmd.Name, Age: cmd.Age.value, FavouriteGenre: cmd.Genre}
	if err := app.Library.AddAuthor(ctx, author); err != nil {
		return err
	}
	cmd.printf("Saved %s\n", author)
	return nil
}

// UpdateAuthorCommand changes the fields given on the command line.
type UpdateAuthorCommand struct {
	env
	Name    string
	NewName optionalString
	Age     optionalInt
	Genre   optionalString
}

func NewUpdateAuthorCommand() *UpdateAuthorCommand {
	return &UpdateAuthorCommand{}
}

func (cmd *UpdateAuthorCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("update-author", flag.ContinueOnError)
	fs.StringVar(&cmd.Name, "name", "", "Name of the author to update (required)")
	fs.Var(&cmd.NewName, "new-name", "New name")
	fs.Var(&cmd.Age, "age", "New age, 0 to 120")
	fs.Var(&cmd.Genre, "genre", "New favourite genre")
	fs.Usage = usage("update-author", "-name <name> [options]",
		"Update an author. Only the given fields change.", fs.PrintDefaults)

	if err := fs.Parse(args); err != nil {
		return err
	}
	return required("name", cmd.Name)
}

func (cmd *UpdateAuthorCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	changes := library.AuthorChanges{
		Name:           cmd.NewName.value,
		Age:            cmd.Age.value,
		FavouriteGenre: cmd.Genre.value,
	}
	if err := app.Library.UpdateAuthor(ctx, cmd.Name, changes); err != nil {
		return err
	}

	name := cmd.Name
	if changes.Name != nil {
		name = *changes.Name
	}
	author, err := app.Library.FindAuthorByName(ctx, name)
	if err != nil {
		return err
	}
	cmd.printf("Updated %s\n", author)
	return nil
}

// DeleteAuthorCommand removes an author without books.
type DeleteAuthorCommand struct {
	env
	Name string
}

func NewDeleteAuthorCommand() *DeleteAuthorCommand {
	return &DeleteAuthorCommand{}
}

func (cmd *DeleteAuthorCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("delete-author", flag.ContinueOnError)
	fs.StringVar(&cmd.Name, "name", "", "Name of the author to delete (required)")
	fs.Usage = usage("delete-author", "-name <name>",
		"Delete an author. Authors that still have books are kept.", fs.PrintDefaults)

	if err := fs.Parse(args); err != nil {
		return err
	}
	return required("name", cmd.Name)
}

func (cmd *DeleteAuthorCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	if err := app.Library.DeleteAuthor(ctx, cmd.Name); err != nil {
		return err
	}
	cmd.printf("Deleted author %s\n", cmd.Name)
	return nil
}

// FindAuthorCommand prints an author, its books and optionally its history.
type FindAuthorCommand struct {
	env
	Name    string
	History bool
}

func NewFindAuthorCommand() *FindAuthorCommand {
	return &FindAuthorCommand{}
}

func (cmd *FindAuthorCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("find-author", flag.ContinueOnError)
	fs.StringVar(&cmd.Name, "name", "", "Name of the author (required)")
	fs.BoolVar(&cmd.History, "history", false, "Also print the audit history of the author")
	fs.Usage = usage("find-author", "-name <name> [-history]",
		"Print an author and the books they wrote.", fs.PrintDefaults)

	if err := fs.Parse(args); err != nil {
		return err
	}
	return required("name", cmd.Name)
}

func (cmd *FindAuthorCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	author, err := app.Library.FindAuthorByName(ctx, cmd.Name)
	if err != nil {
		return err
	}
	books, err := app.Library.GetBooksOfAuthor(ctx, cmd.Name)
	if err != nil {
		return err
	}

	cmd.printf("%s\n", author)
	for _, book := range books {
		cmd.printf("  %s\n", &book)
	}

	if cmd.History {
		return printHistory(&cmd.env, app, "author", author.Name)
	}
	return nil
}
