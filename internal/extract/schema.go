package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadSchema reads a named schema description from dir. Schema IDs map to
// <dir>/<id>.json; path traversal in the ID is rejected.
func LoadSchema(dir string, schemaID string) (map[string]any, error) {
	if schemaID == "" {
		return nil, errors.New("missing schema id")
	}
	if strings.ContainsAny(schemaID, `/\`) || schemaID != filepath.Base(schemaID) {
		return nil, fmt.Errorf("invalid schema id %q", schemaID)
	}
	path := filepath.Join(dir, schemaID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, err
	}
	return schema, nil
}
