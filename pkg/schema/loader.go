package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNoProperties = errors.New("schema has no properties")

// Parse decodes a YAML or JSON schema document.
func Parse(data []byte) (*Schema, error) {
	var root Schema
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if len(root.Properties()) == 0 {
		return nil, ErrNoProperties
	}
	if root.Type == "" {
		root.Type = "object"
	}
	return &root, nil
}

// Load reads and parses the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
