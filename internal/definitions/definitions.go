// Package definitions loads the concept and radar dimension definitions
// produced by the planning step. Both YAML and JSON files are accepted.
package definitions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"brandradar/internal/domain"
)

// Load reads and validates a definitions file.
func Load(path string) (domain.Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Definitions{}, fmt.Errorf("read definitions: %w", err)
	}
	defs, err := Parse(data)
	if err != nil {
		return domain.Definitions{}, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// Parse decodes and validates definitions. A concept without searchTerms or
// a dimension without conceptNames is rejected; empty lists are accepted.
func Parse(data []byte) (domain.Definitions, error) {
	var defs domain.Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return domain.Definitions{}, fmt.Errorf("parse definitions: %w", err)
	}
	if err := defs.Validate(); err != nil {
		return domain.Definitions{}, err
	}
	return defs, nil
}
