package audit

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	auditRepo "github.com/cebix/library/internal/database/audit"
	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.AuditEvent{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	repo := auditRepo.NewRepository(db)
	svc := NewService(repo, zerolog.Nop())

	return svc, db
}

func TestService_Log(t *testing.T) {
	svc, db := setupTestService(t)

	event := &entities.AuditEvent{
		EventType:   entities.AuditEventCreate,
		Action:      "add_author",
		Description: "Test event",
		Status:      entities.AuditStatusSuccess,
	}

	err := svc.Log(event)
	require.NoError(t, err)

	var saved entities.AuditEvent
	err = db.First(&saved, event.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "add_author", saved.Action)
}

func TestService_RecordOperation(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	t.Run("successful operation", func(t *testing.T) {
		err := svc.RecordOperation(ctx, services.Operation{
			ID:         "op-1",
			Name:       "UpdateBookTitle",
			Type:       entities.AuditEventUpdate,
			EntityType: "book",
			EntityKey:  "Eragon",
		})
		require.NoError(t, err)

		var event entities.AuditEvent
		err = db.Where("operation_id = ?", "op-1").First(&event).Error
		require.NoError(t, err)
		assert.Equal(t, "update_book_title", event.Action)
		assert.Equal(t, entities.AuditEventUpdate, event.EventType)
		assert.Equal(t, "book", event.EntityType)
		assert.Equal(t, "Eragon", event.EntityKey)
		assert.Equal(t, `UpdateBookTitle book "Eragon"`, event.Description)
		assert.Equal(t, entities.AuditStatusSuccess, event.Status)
		assert.Empty(t, event.ErrorMsg)
	})

	t.Run("failed operation", func(t *testing.T) {
		err := svc.RecordOperation(ctx, services.Operation{
			ID:         "op-2",
			Name:       "DeleteAuthor",
			Type:       entities.AuditEventDelete,
			EntityType: "author",
			EntityKey:  "Nobody",
			Err:        errors.New("Author with name Nobody was not found."),
		})
		require.NoError(t, err)

		var event entities.AuditEvent
		err = db.Where("operation_id = ?", "op-2").First(&event).Error
		require.NoError(t, err)
		assert.Equal(t, entities.AuditStatusFailed, event.Status)
		assert.Equal(t, "Author with name Nobody was not found.", event.ErrorMsg)
	})

	t.Run("history", func(t *testing.T) {
		events, err := svc.History("book", "Eragon")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "op-1", events[0].OperationID)
	})
}

func TestService_LogExport(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.LogExport(ctx, services.ExportResult{AuthorsExported: 2, BooksExported: 3, FilesWritten: 6}, nil))
	require.NoError(t, svc.LogExport(ctx, services.ExportResult{}, errors.New("permission denied")))

	events, total, err := svc.GetEventsByType(entities.AuditEventExport, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	var failed, succeeded int
	for _, e := range events {
		switch e.Status {
		case entities.AuditStatusFailed:
			failed++
			assert.Equal(t, "permission denied", e.ErrorMsg)
		case entities.AuditStatusSuccess:
			succeeded++
			assert.Equal(t, "Exported 2 authors and 3 books to 6 files", e.Description)
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, succeeded)
}

func TestService_DeleteOldEvents(t *testing.T) {
	svc, _ := setupTestService(t)

	now := time.Now()
	require.NoError(t, svc.Log(&entities.AuditEvent{Action: "old", CreatedAt: now.Add(-48 * time.Hour)}))
	require.NoError(t, svc.Log(&entities.AuditEvent{Action: "new", CreatedAt: now.Add(-1 * time.Hour)}))

	deleted, err := svc.DeleteOldEvents(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	events, total, err := svc.GetEvents(10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "new", events[0].Action)
}

func TestActionName(t *testing.T) {
	assert.Equal(t, "add_author", actionName("AddAuthor"))
	assert.Equal(t, "update_book_number_of_pages", actionName("UpdateBookNumberOfPages"))
	assert.Equal(t, "", actionName(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("a", 600)
	assert.Len(t, truncate(long, 500), 500)
	assert.True(t, strings.HasSuffix(truncate(long, 500), "..."))
}
