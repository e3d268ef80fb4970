package boxcode

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadKey reads a YAML box key file that overrides the built-in tables.
// A missing file yields the defaults; entries in the file are merged over
// the built-ins so a key file only needs to list its additions.
func LoadKey(path string) (Key, error) {
	key := DefaultKey()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return key, nil
	}
	if err != nil {
		return key, fmt.Errorf("failed to read box key: %w", err)
	}

	var overrides Key
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return key, fmt.Errorf("failed to parse box key: %w", err)
	}

	for code, name := range overrides.Categories {
		key.Categories[code] = name
	}
	for code, name := range overrides.Locations {
		key.Locations[code] = name
	}
	return key, nil
}
