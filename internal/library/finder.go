package library

import (
	"context"
	"errors"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

// FindAuthorByName returns the author with exactly this name.
func (l *Library) FindAuthorByName(ctx context.Context, name string) (*entities.Author, error) {
	var author *entities.Author
	err := l.read(ctx, "FindAuthorByName", func(s services.Session) error {
		var err error
		author, err = findAuthor(s, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}

// FindBookByTitle returns the book with exactly this title, author included.
func (l *Library) FindBookByTitle(ctx context.Context, title string) (*entities.Book, error) {
	var book *entities.Book
	err := l.read(ctx, "FindBookByTitle", func(s services.Session) error {
		var err error
		book, err = findBook(s, title)
		return err
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

func findAuthor(s services.Session, name string) (*entities.Author, error) {
	author, err := s.AuthorByName(name)
	if errors.Is(err, services.ErrNoResult) {
		return nil, authorNotFound(name)
	}
	return author, err
}

func findBook(s services.Session, title string) (*entities.Book, error) {
	book, err := s.BookByTitle(title)
	if errors.Is(err, services.ErrNoResult) {
		return nil, bookNotFound(title)
	}
	return book, err
}

// existingAuthor resolves the author a book is attached to.
func existingAuthor(s services.Session, name string) (*entities.Author, error) {
	author, err := s.AuthorByName(name)
	if errors.Is(err, services.ErrNoResult) {
		return nil, authorNotExist(name)
	}
	return author, err
}
