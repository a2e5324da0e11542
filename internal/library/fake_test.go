package library

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

// fakeStore records every unit-of-work call made by the library.
type fakeStore struct {
	authors map[string]entities.Author
	books   map[string]entities.Book

	merged    []entities.Entity
	removed   []entities.Entity
	opened    int
	closed    int
	commits   int
	rollbacks int

	mergeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		authors: map[string]entities.Author{},
		books:   map[string]entities.Book{},
	}
}

func (f *fakeStore) addAuthor(author *entities.Author) *entities.Author {
	author.ID = uint(len(f.authors) + 1)
	f.authors[author.Name] = *author
	return author
}

func (f *fakeStore) addBook(book *entities.Book, author *entities.Author) *entities.Book {
	book.ID = uint(len(f.books) + 1)
	book.SetAuthor(author)
	f.books[book.Title] = *book
	return book
}

func (f *fakeStore) OpenSession(ctx context.Context) (services.Session, error) {
	f.opened++
	return &fakeSession{store: f}, nil
}

type fakeSession struct {
	store *fakeStore
}

func (s *fakeSession) Begin() (services.Transaction, error) {
	return &fakeTransaction{store: s.store}, nil
}

func (s *fakeSession) Merge(entity entities.Entity) error {
	if s.store.mergeErr != nil {
		return s.store.mergeErr
	}
	s.store.merged = append(s.store.merged, entity)
	return nil
}

func (s *fakeSession) Remove(entity entities.Entity) error {
	s.store.removed = append(s.store.removed, entity)
	return nil
}

func (s *fakeSession) AuthorByName(name string) (*entities.Author, error) {
	author, ok := s.store.authors[name]
	if !ok {
		return nil, services.ErrNoResult
	}
	return &author, nil
}

func (s *fakeSession) BookByTitle(title string) (*entities.Book, error) {
	book, ok := s.store.books[title]
	if !ok {
		return nil, services.ErrNoResult
	}
	return &book, nil
}

func (s *fakeSession) Authors() ([]entities.Author, error) {
	var authors []entities.Author
	for _, a := range s.store.authors {
		authors = append(authors, a)
	}
	return authors, nil
}

func (s *fakeSession) Books() ([]entities.Book, error) {
	var books []entities.Book
	for _, b := range s.store.books {
		books = append(books, b)
	}
	return books, nil
}

func (s *fakeSession) BooksByAuthorName(name string) ([]entities.Book, error) {
	var books []entities.Book
	for _, b := range s.store.books {
		if b.Author != nil && b.Author.Name == name {
			books = append(books, b)
		}
	}
	return books, nil
}

func (s *fakeSession) Close() error {
	s.store.closed++
	return nil
}

type fakeTransaction struct {
	store *fakeStore
}

func (t *fakeTransaction) Commit() error {
	t.store.commits++
	return nil
}

func (t *fakeTransaction) Rollback() error {
	t.store.rollbacks++
	return nil
}

type fakeRecorder struct {
	ops []services.Operation
}

func (r *fakeRecorder) RecordOperation(ctx context.Context, op services.Operation) error {
	r.ops = append(r.ops, op)
	return nil
}

func newTestLibrary(t *testing.T, store *fakeStore, opts Options) (*Library, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	opts.Logger = &logger
	return New(store, opts), &buf
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
