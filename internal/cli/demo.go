package cli

import (
	"context"
	"flag"

	"github.com/cebix/library/internal/entities"
)

// DemoCommand fills the catalog with a small sample and prints it back.
type DemoCommand struct {
	env
	Cleanup bool
}

func NewDemoCommand() *DemoCommand {
	return &DemoCommand{}
}

func (cmd *DemoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.BoolVar(&cmd.Cleanup, "cleanup", true, "Delete \"Harry Potter\" and Rowling at the end")
	fs.Usage = usage("demo", "[-cleanup=false]",
		"Add two authors and three books, then list them.", fs.PrintDefaults)

	return fs.Parse(args)
}

func (cmd *DemoCommand) Run(ctx context.Context) error {
	app, done, err := cmd.open()
	if err != nil {
		return err
	}
	defer done()
	lib := app.Library

	mateusz := entities.NewAuthor("Mateusz", 33, "Fantasy")
	rowling := entities.NewAuthor("Rowling", 45, "Fantasy")

	// Adding Mateusz twice updates the stored row.
	for _, author := range []*entities.Author{mateusz, mateusz, rowling} {
		if err := lib.AddAuthor(ctx, author); err != nil {
			return err
		}
	}

	additions := []struct {
		author string
		book   *entities.Book
	}{
		{"Mateusz", entities.NewBook("Eragon", "Fantasy", 320)},
		{"Mateusz", entities.NewBook("Malowany Czlowiek", "Fantasy", 400)},
		{"Rowling", entities.NewBook("Harry Potter", "Fantasy", 350)},
	}
	for _, a := range additions {
		if err := lib.AddBookToAuthor(ctx, a.author, a.book); err != nil {
			return err
		}
	}

	books, err := lib.GetBooksOfAuthor(ctx, "Mateusz")
	if err != nil {
		return err
	}
	for _, book := range books {
		cmd.printf("%s\n", &book)
	}

	authors, err := lib.GetAllAuthors(ctx)
	if err != nil {
		return err
	}
	cmd.printf("%v\n\n", authorList(authors))

	all, err := lib.GetAllBooks(ctx)
	if err != nil {
		return err
	}
	cmd.printf("%v\n\n", bookList(all))

	catalog, err := lib.GetAllBooksAndAuthors(ctx)
	if err != nil {
		return err
	}
	cmd.printf("%v\n%v\n", bookList(catalog.Books), authorList(catalog.Authors))

	if !cmd.Cleanup {
		return nil
	}
	if err := lib.DeleteBook(ctx, "Harry Potter"); err != nil {
		return err
	}
	return lib.DeleteAuthor(ctx, "Rowling")
}

func authorList(authors []entities.Author) []*entities.Author {
	out := make([]*entities.Author, len(authors))
	for i := range authors {
		out[i] = &authors[i]
	}
	return out
}

func bookList(books []entities.Book) []*entities.Book {
	out := make([]*entities.Book, len(books))
	for i := range books {
		out[i] = &books[i]
	}
	return out
}
