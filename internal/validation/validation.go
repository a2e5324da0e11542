// Package validation holds the field rules an Author or Book must satisfy
// before it may be merged into the store.
//
// Every function returns nil or an *Error carrying the literal message for
// the first violated rule. Composite checks (Author, Book) run the field
// checks in a fixed order and stop at the first failure.
package validation

import (
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/cebix/library/internal/entities"
)

const (
	MinAuthorAge = 0
	MaxAuthorAge = 120

	MinNumberOfPages = 1
	MaxNumberOfPages = 3000
)

const (
	MsgAuthorNil            = "Author cannot be null."
	MsgAuthorName           = "Author's name cannot be null or empty."
	MsgAuthorAge            = "Author's age must be a positive number less than 120."
	MsgAuthorFavouriteGenre = "Author's favourite genre cannot be null or empty."
	MsgBookNil              = "Book cannot be null."
	MsgBookTitle            = "Book's title cannot be null or empty."
	MsgBookGenre            = "Book's genre cannot be null or empty."
	MsgBookNumberOfPages    = "Book's number of pages must be a positive number between 1 and 3000."
	MsgBookAuthor           = "Book's author cannot be null."
)

// ErrInvalidEntity is the kind shared by every validation failure.
var ErrInvalidEntity = errors.New("invalid entity")

// Error is a validation failure with a human-readable message.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return ErrInvalidEntity
}

func invalid(message string) error {
	return &Error{Message: message}
}

// check runs rules against value and maps the first ozzo violation onto an
// *Error with the rule's message.
func check(value any, rules ...ozzo.Rule) error {
	if err := ozzo.Validate(value, rules...); err != nil {
		return invalid(err.Error())
	}
	return nil
}

func nonEmpty(value string, message string) error {
	return check(value, ozzo.Required.Error(message))
}

func inRange(value *int, min, max int, message string) error {
	return check(value,
		ozzo.NotNil.Error(message),
		ozzo.Min(min).Error(message),
		ozzo.Max(max).Error(message),
	)
}

// Author validates name, age and favourite genre, in that order.
func Author(author *entities.Author) error {
	if author == nil {
		return invalid(MsgAuthorNil)
	}
	if err := AuthorName(author.Name); err != nil {
		return err
	}
	if err := AuthorAge(author.Age); err != nil {
		return err
	}
	return AuthorFavouriteGenre(author.FavouriteGenre)
}

func AuthorName(name string) error {
	return nonEmpty(name, MsgAuthorName)
}

// AuthorAge accepts 0 through 120 inclusive.
func AuthorAge(age *int) error {
	return inRange(age, MinAuthorAge, MaxAuthorAge, MsgAuthorAge)
}

func AuthorFavouriteGenre(genre string) error {
	return nonEmpty(genre, MsgAuthorFavouriteGenre)
}

// Book validates title, genre, number of pages and author, in that order.
func Book(book *entities.Book) error {
	if book == nil {
		return invalid(MsgBookNil)
	}
	if err := BookTitle(book.Title); err != nil {
		return err
	}
	if err := BookGenre(book.Genre); err != nil {
		return err
	}
	if err := BookNumberOfPages(book.NumberOfPages); err != nil {
		return err
	}
	return BookAuthor(book.Author)
}

func BookTitle(title string) error {
	return nonEmpty(title, MsgBookTitle)
}

func BookGenre(genre string) error {
	return nonEmpty(genre, MsgBookGenre)
}

// BookNumberOfPages accepts 1 through 3000 inclusive.
func BookNumberOfPages(pages *int) error {
	// Min skips zero values, so Required rejects 0 explicitly.
	return check(pages,
		ozzo.NotNil.Error(MsgBookNumberOfPages),
		ozzo.Required.Error(MsgBookNumberOfPages),
		ozzo.Min(MinNumberOfPages).Error(MsgBookNumberOfPages),
		ozzo.Max(MaxNumberOfPages).Error(MsgBookNumberOfPages),
	)
}

func BookAuthor(author *entities.Author) error {
	if author == nil {
		return invalid(MsgBookAuthor)
	}
	return nil
}
