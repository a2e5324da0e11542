// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations
//	├── session.go       # Unit of work: transactions, merge, remove, lookups
//	├── errors.go        # Constraint violation translation
//	├── authors/         # Author queries
//	├── books/           # Book queries (author preloaded)
//	└── audit/           # Audit event storage
//
// # Sessions
//
// Database implements services.SessionFactory. Each session wraps the
// connection bound to the caller's context and holds at most one open
// transaction:
//
//	db, err := database.NewDatabase(cfg.Database)
//	session, err := db.OpenSession(ctx)
//	defer session.Close()
//
//	tx, err := session.Begin()
//	err = session.Merge(author)
//	err = tx.Commit()
//
// Closing a session rolls back a transaction that is still open.
//
// # Errors
//
// Unique and foreign key violations from either driver are reported as
// ErrDuplicate and ErrReferenced. Lookups that find nothing return
// services.ErrNoResult.
//
// # Adding a New Domain
//
// To add a new domain:
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Expose it through Session if the library needs it inside a unit of work
package database
