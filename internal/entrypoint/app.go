// Package entrypoint wires configuration, storage and the library together.
package entrypoint

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cebix/library/internal/audit"
	"github.com/cebix/library/internal/config"
	"github.com/cebix/library/internal/database"
	auditrepo "github.com/cebix/library/internal/database/audit"
	"github.com/cebix/library/internal/exporters"
	"github.com/cebix/library/internal/library"
	"github.com/cebix/library/internal/logging"
)

// App holds the long-lived components of one process.
type App struct {
	Config  *config.Config
	Log     zerolog.Logger
	DB      *database.Database
	Audit   *audit.Service // nil when AUDIT_ENABLED is false
	Library *library.Library
}

// Load reads the configuration, installs the global logger and opens the app.
func Load() (*App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	return NewApp(cfg, logging.Init(cfg.Logging))
}

// NewApp opens the database and builds the library on top of it.
func NewApp(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		Config: cfg,
		Log:    logger,
		DB:     db,
	}

	opts := library.Options{
		Logger:            &logger,
		RollbackOnFailure: cfg.Library.RollbackOnFailure,
	}
	if cfg.Audit.Enabled {
		app.Audit = audit.NewService(auditrepo.NewRepository(db.DB), logger)
		opts.Recorder = app.Audit
	}
	app.Library = library.New(db, opts)

	return app, nil
}

// Exporter builds a catalog exporter writing markdown into dir. With
// snapshot set, a JSON snapshot lands in dir/snapshots as well.
func (a *App) Exporter(dir string, snapshot bool) *exporters.CatalogExporter {
	writers := []exporters.CatalogWriter{exporters.NewMarkdownExporter(dir)}
	if snapshot {
		writers = append(writers, exporters.NewSnapshotWriter(filepath.Join(dir, "snapshots")))
	}
	return exporters.NewCatalogExporter(a.Library, a.exportRecorder(), writers...)
}

func (a *App) exportRecorder() exporters.ExportRecorder {
	if a.Audit == nil {
		return nil
	}
	return a.Audit
}

// Close releases the database.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
