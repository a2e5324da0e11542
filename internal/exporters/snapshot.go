package exporters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cebix/library/internal/entities"
	"github.com/cebix/library/internal/services"
)

// SnapshotWriter saves the whole catalog as one JSON document named by a
// random UUID.
type SnapshotWriter struct {
	Dir string
}

func NewSnapshotWriter(dir string) *SnapshotWriter {
	return &SnapshotWriter{Dir: dir}
}

func (w *SnapshotWriter) Write(catalog *entities.Catalog) (services.ExportResult, error) {
	if _, err := w.SaveJSON(catalog); err != nil {
		return services.ExportResult{}, err
	}
	return services.ExportResult{
		AuthorsExported: len(catalog.Authors),
		BooksExported:   len(catalog.Books),
		FilesWritten:    1,
	}, nil
}

// SaveJSON writes data to a new file in Dir and returns the file name.
func (w *SnapshotWriter) SaveJSON(data any) (string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s.json", uuid.New().String())
	path := filepath.Join(w.Dir, filename)

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot file: %w", err)
	}

	log.Info().Str("path", path).Msg("Saved catalog snapshot")
	return filename, nil
}
