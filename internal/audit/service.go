// Package audit keeps the trail of catalog changes and exports.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/cebix/library/internal/database/audit"
	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

const maxMessageLen = 500

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
	log  zerolog.Logger
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, log: logger}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// RecordOperation stores the outcome of a library operation.
func (s *Service) RecordOperation(ctx context.Context, op services.Operation) error {
	event := &entities.AuditEvent{
		OperationID: op.ID,
		EventType:   op.Type,
		Action:      actionName(op.Name),
		EntityType:  op.EntityType,
		EntityKey:   op.EntityKey,
		Description: truncate(describe(op), maxMessageLen),
		Status:      entities.AuditStatusSuccess,
	}

	if op.Err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(op.Err.Error(), maxMessageLen)
	}

	if err := s.repo.WithContext(ctx).LogEvent(event); err != nil {
		return fmt.Errorf("failed to log audit event: %w", err)
	}
	s.log.Debug().Str("operation_id", op.ID).Str("action", event.Action).Msg("Recorded audit event")
	return nil
}

// LogExport records a catalog export.
func (s *Service) LogExport(ctx context.Context, result services.ExportResult, err error) error {
	description := fmt.Sprintf("Exported %d authors and %d books to %d files",
		result.AuthorsExported, result.BooksExported, result.FilesWritten)
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventExport,
		Action:      "catalog_export",
		Description: description,
		Status:      entities.AuditStatusSuccess,
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), maxMessageLen)
	}

	return s.repo.WithContext(ctx).LogEvent(event)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, limit, offset)
}

// History retrieves every recorded change of one author or book.
func (s *Service) History(entityType, key string) ([]entities.AuditEvent, error) {
	return s.repo.GetEventsForEntity(entityType, key)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

func describe(op services.Operation) string {
	if op.EntityKey == "" {
		return op.Name
	}
	return fmt.Sprintf("%s %s %q", op.Name, op.EntityType, op.EntityKey)
}

// actionName turns an operation name into snake case: "UpdateBookTitle"
// becomes "update_book_title".
func actionName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
