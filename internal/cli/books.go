package cli

import (
	"context"
	"flag"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/library"
)

// AddBookCommand attaches a new book to a stored author.
type AddBookCommand struct {
	env
	Author string
	Title  string
	Genre  string
	Pages  optionalInt
}

func NewAddBookCommand() *AddBookCommand {
	return &AddBookCommand{}
}

func (cmd *AddBookCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add-book", flag.ContinueOnError)
	fs.StringVar(&cmd.Author, "author", "", "Name of a stored author (required)")
	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Genre, "genre", "", "Book genre")
	fs.Var(&cmd.Pages, "pages", "Number of pages, 1 to 3000")
	fs.Usage = usage("add-book", "-author <name> -title <title> -genre <genre> -pages <n>",
		"Add a book written by a stored author.", fs.PrintDefaults)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("author", cmd.Author); err != nil {
		return err
	}
	return required("title", cmd.Title)
}

func (cmd *AddBookCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	book := &entities.Book{Title: cmd.Title, Genre: cmd.Genre, NumberOfPages: cmd.Pages.value}
	if err := app.Library.AddBookToAuthor(ctx, cmd.Author, book); err != nil {
		return err
	}
	cmd.printf("Saved %s\n", book)
	return nil
}

// UpdateBookCommand changes the fields given on the command line.
type UpdateBookCommand struct {
	env
	Title    string
	NewTitle optionalString
	Genre    optionalString
	Pages    optionalInt
	Author   optionalString
}

func NewUpdateBookCommand() *UpdateBookCommand {
	return &UpdateBookCommand{}
}

func (cmd *UpdateBookCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("update-book", flag.ContinueOnError)
	fs.StringVar(&cmd.Title, "title", "", "Title of the book to update (required)")
	fs.Var(&cmd.NewTitle, "new-title", "New title")
	fs.Var(&cmd.Genre, "genre", "New genre")
	fs.Var(&cmd.Pages, "pages", "New number of pages, 1 to 3000")
	fs.Var(&cmd.Author, "author", "Name of the stored author to move the book to")
	fs.Usage = usage("update-book", "-title <title> [options]",
		"Update a book. Only the given fields change.", fs.PrintDefaults)

	if err := fs.Parse(args); err != nil {
		return err
	}
	return required("title", cmd.Title)
}

func (cmd *UpdateBookCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	changes := library.BookChanges{
		Title:         cmd.NewTitle.value,
		Genre:         cmd.Genre.value,
		NumberOfPages: cmd.Pages.value,
		AuthorName:    cmd.Author.value,
	}
	if err := app.Library.UpdateBook(ctx, cmd.Title, changes); err != nil {
		return err
	}

	title := cmd.Title
	if changes.Title != nil {
		title = *changes.Title
	}
	book, err := app.Library.FindBookByTitle(ctx, title)
	if err != nil {
		return err
	}
	cmd.printf("Updated %s\n", book)
	return nil
}

// DeleteBookCommand removes a book.
type DeleteBookCommand struct {
	env
	Title string
}

func NewDeleteBookCommand() *DeleteBookCommand {
	return &DeleteBookCommand{}
}

func (cmd *DeleteBookCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("delete-book", flag.ContinueOnError)
	fs.StringVar(&cmd.Title, "title", "", "Title of the book to delete (required)")
	fs.Usage = usage("delete-book", "-title <title>", "Delete a book.", fs.PrintDefaults)

	if err := fs.Parse(args); err != nil {
		return err
	}
	return required("title", cmd.Title)
}

func (cmd *DeleteBookCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	if err := app.Library.DeleteBook(ctx, cmd.Title); err != nil {
		return err
	}
	cmd.printf("Deleted book %s\n", cmd.Title)
	return nil
}

// FindBookCommand prints a book and optionally its history.
type FindBookCommand struct {
	env
	Title   string
	History bool
}

func NewFindBookCommand() *FindBookCommand {
	return &FindBookCommand{}
}

func (cmd *FindBookCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("find-book", flag.ContinueOnError)
	fs.StringVar(&cmd.Title, "title", "", "Title of the book (required)")
	fs.BoolVar(&cmd.History, "history", false, "Also print the audit history of the book")
	fs.Usage = usage("find-book", "-title <title> [-history]", "Print a book.", fs.PrintDefaults)

	if err := fs.Parse(args); err != nil {
		return err
	}
	return required("title", cmd.Title)
}

func (cmd *FindBookCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()

	book, err := app.Library.FindBookByTitle(ctx, cmd.Title)
	if err != nil {
		return err
	}
	cmd.printf("%s\n", book)

	if cmd.History {
		return printHistory(&cmd.env, app, "book", book.Title)
	}
	return nil
}
