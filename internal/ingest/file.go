package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ReadFile loads an array of listing objects from a .json, .yaml or .yml file.
// Each object becomes a Document whose ID is taken from its "id" field.
func ReadFile(path string) ([]Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to read listings file: %w", err)
	}

	var records []map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse JSON listings: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse YAML listings: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported listings file type %q (want .json, .yaml or .yml)", ext)
	}

	docs := make([]Document, 0, len(records))
	for _, r := range records {
		docs = append(docs, Document{
			ID:   cast.ToString(r["id"]),
			Data: r,
		})
	}
	return docs, nil
}
