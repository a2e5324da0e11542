package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate reports a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced reports a foreign key violation, e.g. removing an author
	// that still has books.
	ErrReferenced = errors.New("record is referenced")

	ErrSessionClosed   = errors.New("session is closed")
	ErrTransactionDone = errors.New("transaction has already been committed or rolled back")
)

// Postgres SQLSTATE codes for integrity constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver constraint errors onto ErrDuplicate and
// ErrReferenced. The driver error stays in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		// Deleting a parent row reports the foreign key check as a trigger
		// constraint (SQLITE_CONSTRAINT_TRIGGER), inserts report
		// SQLITE_CONSTRAINT_FOREIGNKEY.
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey,
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintTrigger,
			strings.Contains(sqliteErr.Error(), "FOREIGN KEY"):
			return fmt.Errorf("%w: %w", ErrReferenced, err)
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrReferenced, err)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrReferenced, err)
	}

	return err
}
