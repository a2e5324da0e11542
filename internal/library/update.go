package library

import (
	"context"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

// FieldUpdate changes one field of a stored entity.
//
// The entity is looked up by key, Apply sets the new value and Validate
// checks only that value. Resolve, when set, may replace the value with one
// loaded in the same session; the result is applied again before merging.
type FieldUpdate[E entities.Entity, V any] struct {
	Op         string
	EntityType string
	Lookup     func(s services.Session, key string) (E, error)
	Apply      func(entity E, value V)
	Validate   func(value V) error
	Resolve    func(s services.Session, value V) (V, error)
}

func updateField[E entities.Entity, V any](ctx context.Context, l *Library, u FieldUpdate[E, V], key string, value V) error {
	op := operation(u.Op, entities.AuditEventUpdate, u.EntityType, key)

	return l.run(ctx, op, func(s services.Session) error {
		entity, err := u.Lookup(s, key)
		if err != nil {
			return err
		}

		u.Apply(entity, value)
		if err := u.Validate(value); err != nil {
			return invalid(err)
		}

		if u.Resolve != nil {
			resolved, err := u.Resolve(s, value)
			if err != nil {
				return err
			}
			u.Apply(entity, resolved)
		}

		return s.Merge(entity)
	})
}

func bookField[V any](op string, apply func(*entities.Book, V), validate func(V) error) FieldUpdate[*entities.Book, V] {
	return FieldUpdate[*entities.Book, V]{
		Op:         op,
		EntityType: entityBook,
		Lookup:     findBook,
		Apply:      apply,
		Validate:   validate,
	}
}

func authorField[V any](op string, apply func(*entities.Author, V), validate func(V) error) FieldUpdate[*entities.Author, V] {
	return FieldUpdate[*entities.Author, V]{
		Op:         op,
		EntityType: entityAuthor,
		Lookup:     findAuthor,
		Apply:      apply,
		Validate:   validate,
	}
}
