package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the YAML layout of a catalog overlay file.
type fileFormat struct {
	Models []Entry `yaml:"models"`
}

// LoadFile reads a YAML overlay and merges it over the builtin table.
//
// File layout:
//
//	models:
//	  - name: my-finetune
//	    context_window: 64000
//	    structured_output: true
//	  - name: gpt-4o
//	    context_window: 128000
//	    structured_output: true
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	return Builtin().Merge(f.Models...), nil
}
