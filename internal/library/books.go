package library

import (
	"context"
	"errors"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
	"github.com/cebix/library/internal/validation"
)

var (
	titleUpdate = bookField("UpdateBookTitle",
		func(b *entities.Book, title string) { b.Title = title },
		validation.BookTitle)

	genreUpdate = bookField("UpdateBookGenre",
		func(b *entities.Book, genre string) { b.Genre = genre },
		validation.BookGenre)

	pagesUpdate = bookField("UpdateBookNumberOfPages",
		func(b *entities.Book, pages *int) { b.NumberOfPages = pages },
		validation.BookNumberOfPages)

	bookAuthorUpdate = withAuthorResolver(bookField("UpdateBookAuthor",
		func(b *entities.Book, author *entities.Author) { b.SetAuthor(author) },
		validation.BookAuthor))
)

// withAuthorResolver replaces the given author with the stored author of the
// same name, so a book always points at a persisted row.
func withAuthorResolver(u FieldUpdate[*entities.Book, *entities.Author]) FieldUpdate[*entities.Book, *entities.Author] {
	u.Resolve = func(s services.Session, author *entities.Author) (*entities.Author, error) {
		return existingAuthor(s, author.Name)
	}
	return u
}

// BookChanges lists the fields UpdateBook sets. Nil fields stay unchanged.
type BookChanges struct {
	Title         *string
	Genre         *string
	NumberOfPages *int
	AuthorName    *string
}

// AddBookToAuthor attaches book to the stored author and saves it.
func (l *Library) AddBookToAuthor(ctx context.Context, authorName string, book *entities.Book) error {
	op := operation("AddBookToAuthor", entities.AuditEventCreate, entityBook, titleOf(book))

	return l.run(ctx, op, func(s services.Session) error {
		author, err := findAuthor(s, authorName)
		var missing *Error
		if errors.As(err, &missing) && missing.Kind == ErrNotFound {
			l.log.Debug().Str("op", op.Name).Msg(missing.Message)
			return authorNotExist(authorName)
		}
		if err != nil {
			return err
		}
		if book == nil {
			return invalid(validation.Book(nil))
		}

		book.SetAuthor(author)
		if err := validation.Book(book); err != nil {
			return invalid(err)
		}
		return s.Merge(book)
	})
}

func (l *Library) UpdateBookTitle(ctx context.Context, title, newTitle string) error {
	return updateField(ctx, l, titleUpdate, title, newTitle)
}

func (l *Library) UpdateBookGenre(ctx context.Context, title, newGenre string) error {
	return updateField(ctx, l, genreUpdate, title, newGenre)
}

func (l *Library) UpdateBookNumberOfPages(ctx context.Context, title string, newNumberOfPages *int) error {
	return updateField(ctx, l, pagesUpdate, title, newNumberOfPages)
}

// UpdateBookAuthor moves the book to another stored author, matched by name.
func (l *Library) UpdateBookAuthor(ctx context.Context, title string, newAuthor *entities.Author) error {
	return updateField(ctx, l, bookAuthorUpdate, title, newAuthor)
}

// UpdateBook applies every non-nil change and validates the whole book.
func (l *Library) UpdateBook(ctx context.Context, title string, changes BookChanges) error {
	op := operation("UpdateBook", entities.AuditEventUpdate, entityBook, title)

	return l.run(ctx, op, func(s services.Session) error {
		book, err := findBook(s, title)
		if err != nil {
			return err
		}

		if changes.Title != nil {
			book.Title = *changes.Title
		}
		if changes.Genre != nil {
			book.Genre = *changes.Genre
		}
		if changes.NumberOfPages != nil {
			book.NumberOfPages = changes.NumberOfPages
		}
		if changes.AuthorName != nil {
			author, err := existingAuthor(s, *changes.AuthorName)
			if err != nil {
				return err
			}
			book.SetAuthor(author)
		}

		if err := validation.Book(book); err != nil {
			return invalid(err)
		}
		return s.Merge(book)
	})
}

func (l *Library) DeleteBook(ctx context.Context, title string) error {
	op := operation("DeleteBook", entities.AuditEventDelete, entityBook, title)

	return l.run(ctx, op, func(s services.Session) error {
		if title == "" {
			return errBookTitleRequired
		}
		book, err := findBook(s, title)
		if err != nil {
			return err
		}
		return s.Remove(book)
	})
}

func titleOf(book *entities.Book) string {
	if book == nil {
		return ""
	}
	return book.Title
}
