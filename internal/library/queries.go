package library

import (
	"context"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

func (l *Library) GetAllAuthors(ctx context.Context) ([]entities.Author, error) {
	var authors []entities.Author
	err := l.read(ctx, "GetAllAuthors", func(s services.Session) error {
		var err error
		authors, err = s.Authors()
		return err
	})
	return authors, err
}

func (l *Library) GetAllBooks(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := l.read(ctx, "GetAllBooks", func(s services.Session) error {
		var err error
		books, err = s.Books()
		return err
	})
	return books, err
}

// GetBooksOfAuthor lists the books of the named author. An unknown author
// has no books.
func (l *Library) GetBooksOfAuthor(ctx context.Context, name string) ([]entities.Book, error) {
	var books []entities.Book
	err := l.read(ctx, "GetBooksOfAuthor", func(s services.Session) error {
		var err error
		books, err = s.BooksByAuthorName(name)
		return err
	})
	return books, err
}

// GetAllBooksAndAuthors reads books and authors in one session.
func (l *Library) GetAllBooksAndAuthors(ctx context.Context) (*entities.Catalog, error) {
	catalog := &entities.Catalog{}
	err := l.read(ctx, "GetAllBooksAndAuthors", func(s services.Session) error {
		var err error
		if catalog.Books, err = s.Books(); err != nil {
			return err
		}
		catalog.Authors, err = s.Authors()
		return err
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}
