package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog"

	"github.com/cebix/library/internal/services"
)

// CatalogExporter renders the whole catalog to its configured writers.
type CatalogExporter interface {
	Export(ctx context.Context) (services.ExportResult, error)
}

// ExportCatalogTask writes the catalog to the export directory.
type ExportCatalogTask struct {
	Trigger string `json:"trigger"` // "schedule" or "manual"
}

// Config returns the queue configuration for catalog exports.
func (t ExportCatalogTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "export_catalog",
		MaxAttempts: 2,
		Backoff:     time.Minute,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration: 24 * time.Hour,
			Data:     &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ExportCatalogProcessor creates the processor for ExportCatalogTask.
func ExportCatalogProcessor(exporter CatalogExporter, logger zerolog.Logger) backlite.QueueProcessor[ExportCatalogTask] {
	return func(ctx context.Context, task ExportCatalogTask) error {
		if exporter == nil {
			return errors.New("catalog exporter not configured")
		}

		start := time.Now()
		result, err := exporter.Export(ctx)
		if err != nil {
			return fmt.Errorf("export catalog: %w", err)
		}

		logger.Info().
			Str("trigger", task.Trigger).
			Int("authors", result.AuthorsExported).
			Int("books", result.BooksExported).
			Int("files", result.FilesWritten).
			Dur("took", time.Since(start)).
			Msg("Exported catalog")
		return nil
	}
}

// NewExportCatalogQueue creates the backlite queue for ExportCatalogTask.
func NewExportCatalogQueue(exporter CatalogExporter, logger zerolog.Logger) backlite.Queue {
	return backlite.NewQueue(ExportCatalogProcessor(exporter, logger))
}
