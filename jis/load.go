package jis

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// TableFile is the on-disk form of a user supplied conversion table.
// Rules is optional and extends the built-in binding rules.
type TableFile struct {
	Entries []Entry        `yaml:"entries" toml:"entries"`
	Rules   map[string]int `yaml:"rules" toml:"rules"`
}

// LoadTableFile reads a YAML or TOML table file, chosen by extension.
func LoadTableFile(path string) (*TableFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file %s: %w", path, err)
	}

	var tf *TableFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		tf, err = ParseTOML(data)
	case ".yaml", ".yml":
		tf, err = ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported table file extension %q: %s", ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tf, nil
}

// ParseYAML parses a YAML table document.
func ParseYAML(data []byte) (*TableFile, error) {
	var tf TableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse table YAML: %w", err)
	}
	return finish(&tf)
}

// ParseTOML parses a TOML table document.
func ParseTOML(data []byte) (*TableFile, error) {
	var tf TableFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse table TOML: %w", err)
	}
	return finish(&tf)
}

func finish(tf *TableFile) (*TableFile, error) {
	applyDefaults(tf)
	if err := tf.Table().Validate(); err != nil {
		return nil, err
	}
	return tf, nil
}

func applyDefaults(tf *TableFile) {
	for i := range tf.Entries {
		e := &tf.Entries[i]
		if e.Symbol == "" {
			e.Symbol = e.Name
		}
	}
}

// Table returns the entries as a Table.
func (tf *TableFile) Table() Table {
	return Table(tf.Entries)
}

// Validate checks that every entry has a name, a value and at least one
// non-empty alias. Duplicate aliases are allowed; see Shadowed.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New("table has no entries")
	}
	var errs []error
	for i, e := range t {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("entry %d: empty name", i))
		}
		if e.Value == "" {
			errs = append(errs, fmt.Errorf("entry %d (%s): empty value", i, e.Name))
		}
		if len(e.Aliases) == 0 {
			errs = append(errs, fmt.Errorf("entry %d (%s): no aliases", i, e.Name))
		}
		for j, a := range e.Aliases {
			if a == "" {
				errs = append(errs, fmt.Errorf("entry %d (%s): alias %d is empty", i, e.Name, j))
			}
		}
	}
	return errors.Join(errs...)
}
