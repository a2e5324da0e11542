package library

import (
	"errors"
	"fmt"

	"github.com/cebix/library/internal/validation"
)

// Failure kinds. Every *Error unwraps to exactly one of them.
var (
	ErrInvalidEntity  = validation.ErrInvalidEntity
	ErrNotFound       = errors.New("not found")
	ErrAuthorNotExist = errors.New("author does not exist")
	ErrKeyRequired    = errors.New("key required")
)

// Error is a domain failure. Message is the text written to the diagnostic
// stream.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: ErrInvalidEntity, Message: err.Error()}
}

func authorNotFound(name string) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("Author with name %s was not found.", name)}
}

func bookNotFound(title string) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("Book with title %s was not found.", title)}
}

func authorNotExist(name string) *Error {
	return &Error{Kind: ErrAuthorNotExist, Message: fmt.Sprintf("Author with name %s is not exist.", name)}
}

var (
	errAuthorNameRequired = &Error{Kind: ErrKeyRequired, Message: "The name of the author must be provided."}
	errBookTitleRequired  = &Error{Kind: ErrKeyRequired, Message: "The title of the book must be provided."}
)
