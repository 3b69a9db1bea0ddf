package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/octobees/roofcompare/internal/entity"
)

// WriteDataset writes the company dataset JSON artifact.
func WriteDataset(path string, companies []entity.Company) error {
	return writeJSON(path, companies)
}

// WriteCityIndex writes the derived autocomplete index JSON artifact.
func WriteCityIndex(path string, cities []CityIndexEntry) error {
	return writeJSON(path, cities)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
