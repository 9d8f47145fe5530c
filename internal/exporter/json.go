package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"combinecli/pkg/contracts/domain"
)

// JSONWriter writes Dataset documents as indented JSON files.
type JSONWriter struct {
	logger *slog.Logger
}

// NewJSONWriter creates a new JSON writer instance.
func NewJSONWriter(logger *slog.Logger) *JSONWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONWriter{logger: logger}
}

// WriteDataset serializes the dataset to the given path, truncating any
// existing file. The output destination is opened only after the full
// in-memory result has been assembled.
func (w *JSONWriter) WriteDataset(path string, dataset *domain.Dataset) error {
	w.logger.Info("Writing dataset",
		slog.String("path", path),
		slog.Int("athletes", len(dataset.Athletes)))

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dataset); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	return f.Close()
}
