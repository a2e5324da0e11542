package exporters

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/cebix/library/internal/services"
)

// CatalogExporter reads the current catalog and hands it to every writer.
type CatalogExporter struct {
	reader   services.CatalogReader
	writers  []CatalogWriter
	recorder ExportRecorder
}

// NewCatalogExporter creates an exporter. recorder may be nil.
func NewCatalogExporter(reader services.CatalogReader, recorder ExportRecorder, writers ...CatalogWriter) *CatalogExporter {
	return &CatalogExporter{
		reader:   reader,
		writers:  writers,
		recorder: recorder,
	}
}

// Export writes the catalog with every writer and returns the combined
// counts. The first failing writer stops the export.
func (e *CatalogExporter) Export(ctx context.Context) (services.ExportResult, error) {
	result, err := e.export(ctx)

	if e.recorder != nil {
		if recErr := e.recorder.LogExport(ctx, result, err); recErr != nil {
			log.Error().Err(recErr).Msg("Failed to record export")
		}
	}
	return result, err
}

func (e *CatalogExporter) export(ctx context.Context) (services.ExportResult, error) {
	result := services.ExportResult{}

	catalog, err := e.reader.GetAllBooksAndAuthors(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to read catalog: %w", err)
	}

	for _, writer := range e.writers {
		written, err := writer.Write(catalog)
		result.FilesWritten += written.FilesWritten
		if err != nil {
			return result, err
		}
		result.AuthorsExported = max(result.AuthorsExported, written.AuthorsExported)
		result.BooksExported = max(result.BooksExported, written.BooksExported)
	}

	log.Info().
		Int("authors", result.AuthorsExported).
		Int("books", result.BooksExported).
		Int("files", result.FilesWritten).
		Msg("Export completed")

	return result, nil
}
