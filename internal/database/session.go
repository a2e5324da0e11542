package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cebix/library/internal/database/authors"
	"github.com/cebix/library/internal/database/books"
	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

// Session is a gorm-backed unit of work. Reads and writes go through the
// open transaction when there is one and through the plain connection
// otherwise.
type Session struct {
	db     *gorm.DB
	tx     *gorm.DB
	closed bool
}

func newSession(db *gorm.DB) *Session {
	return &Session{db: db}
}

func (s *Session) conn() *gorm.DB {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// Begin starts the write scope of the session. A session holds at most one
// transaction at a time.
func (s *Session) Begin() (services.Transaction, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.tx != nil {
		return nil, fmt.Errorf("session already has an open transaction")
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	s.tx = tx
	return &transaction{session: s, tx: tx}, nil
}

// Merge inserts or updates entity by primary key. An entity without an ID
// takes the ID of the stored row with the same natural key, so merging the
// same new author twice updates the existing row. Associations are not
// saved; a book only stores its author's foreign key.
func (s *Session) Merge(entity entities.Entity) error {
	if s.closed {
		return ErrSessionClosed
	}
	db := s.conn()

	adopted := false
	if entity.GetID() == 0 {
		column, value := entity.NaturalKey()
		var ids []uint
		if err := db.Model(entity).Where(column+" = ?", value).Limit(1).Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to look up %s %q: %w", column, value, err)
		}
		if len(ids) > 0 {
			entity.SetID(ids[0])
			adopted = true
		}
	}

	omit := []string{clause.Associations}
	if adopted {
		omit = append(omit, "created_at")
	}
	if err := db.Omit(omit...).Save(entity).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Remove deletes entity by primary key.
func (s *Session) Remove(entity entities.Entity) error {
	if s.closed {
		return ErrSessionClosed
	}
	if entity.GetID() == 0 {
		return fmt.Errorf("cannot remove an entity that was never stored")
	}
	if err := s.conn().Delete(entity).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (s *Session) AuthorByName(name string) (*entities.Author, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	return authors.NewRepository(s.conn()).GetByName(name)
}

func (s *Session) BookByTitle(title string) (*entities.Book, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	return books.NewRepository(s.conn()).GetByTitle(title)
}

func (s *Session) Authors() ([]entities.Author, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	return authors.NewRepository(s.conn()).GetAll()
}

func (s *Session) Books() ([]entities.Book, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	return books.NewRepository(s.conn()).GetAll()
}

func (s *Session) BooksByAuthorName(name string) ([]entities.Book, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	return books.NewRepository(s.conn()).GetByAuthorName(name)
}

// Close rolls back a transaction that is still open. Closing twice is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback().Error
	s.tx = nil
	return err
}

type transaction struct {
	session *Session
	tx      *gorm.DB
	done    bool
}

func (t *transaction) Commit() error {
	if t.done {
		return ErrTransactionDone
	}
	t.finish()
	if err := t.tx.Commit().Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (t *transaction) Rollback() error {
	if t.done {
		return ErrTransactionDone
	}
	t.finish()
	return t.tx.Rollback().Error
}

func (t *transaction) finish() {
	t.done = true
	if t.session.tx == t.tx {
		t.session.tx = nil
	}
}
