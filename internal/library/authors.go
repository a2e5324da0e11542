package library

import (
	"context"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
	"github.com/cebix/library/internal/validation"
)

var (
	nameUpdate = authorField("UpdateAuthorName",
		func(a *entities.Author, name string) { a.Name = name },
		validation.AuthorName)

	ageUpdate = authorField("UpdateAuthorAge",
		func(a *entities.Author, age *int) { a.Age = age },
		validation.AuthorAge)

	favouriteGenreUpdate = authorField("UpdateAuthorFavouriteGenre",
		func(a *entities.Author, genre string) { a.FavouriteGenre = genre },
		validation.AuthorFavouriteGenre)
)

// AuthorChanges lists the fields UpdateAuthor sets. Nil fields stay unchanged.
type AuthorChanges struct {
	Name           *string
	Age            *int
	FavouriteGenre *string
}

// AddAuthor validates and saves author. Adding an author whose name is
// already stored updates that author.
func (l *Library) AddAuthor(ctx context.Context, author *entities.Author) error {
	key := ""
	if author != nil {
		key = author.Name
	}
	op := operation("AddAuthor", entities.AuditEventCreate, entityAuthor, key)

	return l.run(ctx, op, func(s services.Session) error {
		if err := validation.Author(author); err != nil {
			return invalid(err)
		}
		return s.Merge(author)
	})
}

func (l *Library) UpdateAuthorName(ctx context.Context, name, newName string) error {
	return updateField(ctx, l, nameUpdate, name, newName)
}

func (l *Library) UpdateAuthorAge(ctx context.Context, name string, newAge *int) error {
	return updateField(ctx, l, ageUpdate, name, newAge)
}

func (l *Library) UpdateAuthorFavouriteGenre(ctx context.Context, name, newGenre string) error {
	return updateField(ctx, l, favouriteGenreUpdate, name, newGenre)
}

// UpdateAuthor applies every non-nil change and validates the whole author.
func (l *Library) UpdateAuthor(ctx context.Context, name string, changes AuthorChanges) error {
	op := operation("UpdateAuthor", entities.AuditEventUpdate, entityAuthor, name)

	return l.run(ctx, op, func(s services.Session) error {
		author, err := findAuthor(s, name)
		if err != nil {
			return err
		}

		if changes.Name != nil {
			author.Name = *changes.Name
		}
		if changes.Age != nil {
			author.Age = changes.Age
		}
		if changes.FavouriteGenre != nil {
			author.FavouriteGenre = *changes.FavouriteGenre
		}

		if err := validation.Author(author); err != nil {
			return invalid(err)
		}
		return s.Merge(author)
	})
}

// DeleteAuthor removes the author. An author that still has books cannot be
// removed; the store reports database.ErrReferenced.
func (l *Library) DeleteAuthor(ctx context.Context, name string) error {
	op := operation("DeleteAuthor", entities.AuditEventDelete, entityAuthor, name)

	return l.run(ctx, op, func(s services.Session) error {
		if name == "" {
			return errAuthorNameRequired
		}
		author, err := findAuthor(s, name)
		if err != nil {
			return err
		}
		return s.Remove(author)
	})
}
