// Package library validates and persists the catalog of authors and books.
//
// Every mutating operation is one unit of work: it opens a session, begins a
// transaction, looks up what it needs, validates the change and merges or
// removes the entity before committing. Domain failures (invalid values,
// missing entities, missing keys) change nothing. Their message is logged at
// warn level and returned as *Error; the empty transaction is committed, or
// rolled back when Options.RollbackOnFailure is set. Store errors always
// roll back.
package library

import (
	"github.com/rs/zerolog"

	"github.com/cebix/library/internal/services"
)

// Options configures a Library. The zero value logs nothing, commits on
// domain failures and keeps no audit trail.
type Options struct {
	// Logger is the diagnostic stream. Nil disables logging.
	Logger *zerolog.Logger
	// RollbackOnFailure rolls back instead of committing on domain failures.
	RollbackOnFailure bool
	// Recorder, when set, receives the outcome of every mutating operation.
	Recorder services.OperationRecorder
}

// Library runs catalog operations against a session factory.
type Library struct {
	sessions          services.SessionFactory
	log               zerolog.Logger
	rollbackOnFailure bool
	recorder          services.OperationRecorder
}

// New creates a Library over sessions.
func New(sessions services.SessionFactory, opts Options) *Library {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Library{
		sessions:          sessions,
		log:               logger,
		rollbackOnFailure: opts.RollbackOnFailure,
		recorder:          opts.Recorder,
	}
}
