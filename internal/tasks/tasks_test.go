package tasks

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cebix/library/internal/services"
)

type fakePruner struct {
	retention time.Duration
	deleted   int64
	err       error
}

func (f *fakePruner) DeleteOldEvents(retention time.Duration) (int64, error) {
	f.retention = retention
	return f.deleted, f.err
}

type fakeExporter struct {
	calls  int
	result services.ExportResult
	err    error
}

func (f *fakeExporter) Export(ctx context.Context) (services.ExportResult, error) {
	f.calls++
	return f.result, f.err
}

func TestPruneAuditTaskConfig(t *testing.T) {
	cfg := PruneAuditTask{}.Config()

	assert.Equal(t, "prune_audit_events", cfg.Name)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestPruneAuditTaskRetention(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, PruneAuditTask{RetentionDays: 7}.Retention())
	assert.Equal(t, 30*24*time.Hour, PruneAuditTask{}.Retention(), "falls back to 30 days")
}

func TestPruneAuditProcessor(t *testing.T) {
	var buf bytes.Buffer
	pruner := &fakePruner{deleted: 4}

	err := PruneAuditProcessor(pruner, zerolog.New(&buf))(context.Background(), PruneAuditTask{RetentionDays: 10})
	require.NoError(t, err)

	assert.Equal(t, 10*24*time.Hour, pruner.retention)
	assert.Contains(t, buf.String(), `"deleted":4`)
}

func TestPruneAuditProcessor_Errors(t *testing.T) {
	err := PruneAuditProcessor(nil, zerolog.Nop())(context.Background(), PruneAuditTask{})
	assert.Error(t, err)

	failing := &fakePruner{err: errors.New("disk full")}
	err = PruneAuditProcessor(failing, zerolog.Nop())(context.Background(), PruneAuditTask{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestExportCatalogTaskConfig(t *testing.T) {
	cfg := ExportCatalogTask{}.Config()

	assert.Equal(t, "export_catalog", cfg.Name)
	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
}

func TestExportCatalogProcessor(t *testing.T) {
	var buf bytes.Buffer
	exporter := &fakeExporter{result: services.ExportResult{AuthorsExported: 2, BooksExported: 3, FilesWritten: 6}}

	err := ExportCatalogProcessor(exporter, zerolog.New(&buf))(context.Background(), ExportCatalogTask{Trigger: "manual"})
	require.NoError(t, err)

	assert.Equal(t, 1, exporter.calls)
	assert.Contains(t, buf.String(), `"books":3`)
	assert.Contains(t, buf.String(), `"trigger":"manual"`)
}

func TestExportCatalogProcessor_Errors(t *testing.T) {
	err := ExportCatalogProcessor(nil, zerolog.Nop())(context.Background(), ExportCatalogTask{})
	assert.Error(t, err)

	failing := &fakeExporter{err: errors.New("read-only file system")}
	err = ExportCatalogProcessor(failing, zerolog.Nop())(context.Background(), ExportCatalogTask{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only file system")
}
