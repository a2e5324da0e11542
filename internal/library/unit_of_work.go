package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

const (
	entityAuthor = "author"
	entityBook   = "book"
)

func operation(name string, eventType entities.AuditEventType, entityType, key string) services.Operation {
	return services.Operation{
		ID:         uuid.NewString(),
		Name:       name,
		Type:       eventType,
		EntityType: entityType,
		EntityKey:  key,
	}
}

// run executes fn as one unit of work and records its outcome.
func (l *Library) run(ctx context.Context, op services.Operation, fn func(services.Session) error) error {
	logger := l.log.With().Str("op", op.Name).Str("operation_id", op.ID).Logger()

	err := l.execute(ctx, logger, fn)
	var failure *Error
	if err != nil && !errors.As(err, &failure) {
		err = fmt.Errorf("%s: %w", op.Name, err)
	}

	op.Err = err
	l.record(ctx, logger, op)
	return err
}

func (l *Library) execute(ctx context.Context, logger zerolog.Logger, fn func(services.Session) error) error {
	session, err := l.sessions.OpenSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer closeSession(session, logger)

	tx, err := session.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	err = fn(session)

	var failure *Error
	switch {
	case err == nil:
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit: %w", err)
		}
		logger.Debug().Msg("committed")
		return nil

	case errors.As(err, &failure):
		logger.Warn().Msg(failure.Message)
		l.endFailed(tx, logger)
		return failure

	default:
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("failed to roll back")
		}
		logger.Error().Err(err).Msg("operation failed")
		return err
	}
}

// endFailed closes the transaction of a domain failure. Nothing was written,
// so committing leaves the store unchanged.
func (l *Library) endFailed(tx services.Transaction, logger zerolog.Logger) {
	if l.rollbackOnFailure {
		if err := tx.Rollback(); err != nil {
			logger.Error().Err(err).Msg("failed to roll back")
		}
		return
	}
	if err := tx.Commit(); err != nil {
		logger.Error().Err(err).Msg("failed to commit empty transaction")
	}
}

// read executes fn in a session without a transaction.
func (l *Library) read(ctx context.Context, name string, fn func(services.Session) error) error {
	logger := l.log.With().Str("op", name).Logger()

	session, err := l.sessions.OpenSession(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to open session: %w", name, err)
	}
	defer closeSession(session, logger)

	err = fn(session)

	var failure *Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &failure):
		logger.Warn().Msg(failure.Message)
		return failure
	default:
		logger.Error().Err(err).Msg("query failed")
		return fmt.Errorf("%s: %w", name, err)
	}
}

func (l *Library) record(ctx context.Context, logger zerolog.Logger, op services.Operation) {
	if l.recorder == nil {
		return
	}
	if err := l.recorder.RecordOperation(ctx, op); err != nil {
		logger.Error().Err(err).Msg("failed to record operation")
	}
}

func closeSession(session services.Session, logger zerolog.Logger) {
	if err := session.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close session")
	}
}
