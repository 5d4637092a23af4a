package items

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Fixture is a file-based catalog plus named item instances.
type Fixture struct {
	Items     []Data              `toml:"items" yaml:"items"`
	Instances map[string]Instance `toml:"instances" yaml:"instances"`
}

// LoadFixture reads a TOML or YAML fixture, chosen by file extension.
func LoadFixture(path string) (*Fixture, error) {
	var fixture Fixture

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &fixture); err != nil {
			return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &fixture); err != nil {
			return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported fixture format %q", filepath.Ext(path))
	}

	return &fixture, nil
}

// Catalog returns a catalog holding the fixture's items.
func (f *Fixture) Catalog() *MemoryCatalog {
	catalog := NewMemoryCatalog()
	for i := range f.Items {
		catalog.Store(&f.Items[i])
	}

	return catalog
}
