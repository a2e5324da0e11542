package entrypoint

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cebix/library/internal/config"
	"github.com/cebix/library/internal/entities"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	return &config.Config{
		Database: config.Database{Driver: config.DriverSQLite, Path: filepath.Join(dir, "library.db")},
		Logging:  config.Logging{Level: "info", Format: "json"},
		Audit:    config.Audit{Enabled: true, RetentionDays: 30, CleanupSchedule: "0 3 * * *"},
		Export:   config.Export{Enabled: true, Dir: filepath.Join(dir, "export"), Schedule: "0 * * * *"},
		Tasks: config.Tasks{
			Enabled:      true,
			DatabasePath: filepath.Join(dir, "tasks.db"),
			Workers:      1,
		},
		Global: config.Global{ShutdownTimeoutInSeconds: 1},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	app, err := NewApp(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNewApp_RecordsOperations(t *testing.T) {
	app := newTestApp(t, testConfig(t))
	ctx := context.Background()

	require.NotNil(t, app.Audit)
	require.NoError(t, app.Library.AddAuthor(ctx, entities.NewAuthor("Mateusz", 33, "Fantasy")))

	history, err := app.Audit.History("author", "Mateusz")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "add_author", history[0].Action)
}

func TestNewApp_AuditDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Audit.Enabled = false
	app := newTestApp(t, cfg)

	assert.Nil(t, app.Audit)
	assert.Nil(t, app.exportRecorder())
	require.NoError(t, app.Library.AddAuthor(context.Background(), entities.NewAuthor("Rowling", 45, "Fantasy")))
}

func TestApp_Exporter(t *testing.T) {
	cfg := testConfig(t)
	app := newTestApp(t, cfg)
	ctx := context.Background()

	require.NoError(t, app.Library.AddAuthor(ctx, entities.NewAuthor("Mateusz", 33, "Fantasy")))
	require.NoError(t, app.Library.AddBookToAuthor(ctx, "Mateusz", entities.NewBook("Eragon", "Fantasy", 320)))

	result, err := app.Exporter(cfg.Export.Dir, true).Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.BooksExported)
	assert.Equal(t, 1, result.AuthorsExported)

	_, err = os.Stat(filepath.Join(cfg.Export.Dir, "index.md"))
	assert.NoError(t, err)
	snapshots, err := os.ReadDir(filepath.Join(cfg.Export.Dir, "snapshots"))
	require.NoError(t, err)
	assert.Len(t, snapshots, 1)

	events, _, err := app.Audit.GetEventsByType(entities.AuditEventExport, 10, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestJobs(t *testing.T) {
	cfg := testConfig(t)
	app := newTestApp(t, cfg)
	assert.Len(t, jobs(app), 2)

	cfg.Export.Enabled = false
	assert.Len(t, jobs(app), 1)

	app.Audit = nil
	assert.Empty(t, jobs(app))
}

func TestRunWorkers_StopsOnCancel(t *testing.T) {
	app := newTestApp(t, testConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- RunWorkers(ctx, app) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestRunWorkers_TasksDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Tasks.Enabled = false
	app := newTestApp(t, cfg)

	assert.ErrorIs(t, RunWorkers(context.Background(), app), ErrTasksDisabled)
}

func TestRunWorkers_InvalidSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.Schedule = "hourly"
	app := newTestApp(t, cfg)

	err := RunWorkers(context.Background(), app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron schedule")
}
