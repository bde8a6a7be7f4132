package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds option defaults loaded from a YAML file. Flags given on
// the command line always win over file values.
type Config struct {
	// Format is the default output format ("text" or "json").
	Format string `yaml:"format,omitempty"`

	// MaxNodes is the default search node budget; 0 means unbounded.
	MaxNodes int `yaml:"max_nodes,omitempty"`

	// Store is the default SQLite archive path.
	Store string `yaml:"store,omitempty"`
}

// LoadConfig reads a YAML config file. An empty path returns an empty
// config; a missing or malformed file is an error, since the user asked
// for it explicitly.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}
