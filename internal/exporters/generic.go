package exporters

import (
	"context"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

// CatalogWriter writes a catalog to some destination.
type CatalogWriter interface {
	Write(catalog *entities.Catalog) (services.ExportResult, error)
}

// ExportRecorder receives the outcome of every export.
type ExportRecorder interface {
	LogExport(ctx context.Context, result services.ExportResult, err error) error
}
