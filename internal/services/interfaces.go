package services

import (
	"context"
	"errors"

	"github.com/cebix/library/internal/entities"
)

// ErrNoResult is returned by Session lookups when no row matches the key.
var ErrNoResult = errors.New("no result")

// SessionFactory opens units of work against the store.
type SessionFactory interface {
	OpenSession(ctx context.Context) (Session, error)
}

// Session is one unit of work. Lookups and scans run inside the open
// transaction when there is one. Close releases the session and rolls back a
// transaction that was neither committed nor rolled back.
type Session interface {
	Begin() (Transaction, error)

	// Merge inserts or updates entity by identity. An entity without identity
	// adopts the identity of the stored row with the same natural key.
	Merge(entity entities.Entity) error
	Remove(entity entities.Entity) error

	AuthorByName(name string) (*entities.Author, error)
	BookByTitle(title string) (*entities.Book, error)
	Authors() ([]entities.Author, error)
	Books() ([]entities.Book, error)
	BooksByAuthorName(name string) ([]entities.Book, error)

	Close() error
}

// Transaction is the write scope of a Session.
type Transaction interface {
	Commit() error
	Rollback() error
}

// CatalogReader provides read-only access to the whole catalog.
// Use this interface when you only need to render or export books and authors.
type CatalogReader interface {
	GetAllBooksAndAuthors(ctx context.Context) (*entities.Catalog, error)
}

// ExportResult contains the outcome of a catalog export.
type ExportResult struct {
	AuthorsExported int
	BooksExported   int
	FilesWritten    int
}

// Operation describes one finished library operation.
type Operation struct {
	ID         string                  // Unique per call, shared by the log lines of that call
	Name       string                  // e.g. "AddAuthor", "UpdateBookTitle"
	Type       entities.AuditEventType // kind of change
	EntityType string                  // "author" or "book"
	EntityKey  string                  // author name or book title
	Err        error                   // nil when the operation succeeded
}

// OperationRecorder keeps a trail of library operations.
type OperationRecorder interface {
	RecordOperation(ctx context.Context, op Operation) error
}
