package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the filter field mapping.
type Config struct {
	// Fields maps an expression field name (e.g. "sample") to its storage
	// mapping.
	Fields map[string]FieldMapping `yaml:"fields"`
}

// FieldMapping describes how one expression field reaches storage.
type FieldMapping struct {
	// Column is the samples table column the field filters on.
	Column string `yaml:"column"`
}

// Default returns the built-in mapping used when no config file is given:
// the two reserved fields of the sample/group domain.
func Default() *Config {
	return &Config{
		Fields: map[string]FieldMapping{
			"sample": {Column: "sample_id"},
			"group":  {Column: "group_id"},
		},
	}
}

// Load reads and validates a YAML field mapping file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that the mapping is usable: at least one field, and every
// column a plain identifier. Column names are interpolated into SQL criteria,
// so anything else is rejected outright.
func (c *Config) Validate() error {
	if len(c.Fields) == 0 {
		return fmt.Errorf("no fields mapped")
	}
	for field, m := range c.Fields {
		if m.Column == "" {
			return fmt.Errorf("field %q: column is required", field)
		}
		if !isIdentifier(m.Column) {
			return fmt.Errorf("field %q: column %q is not a plain identifier", field, m.Column)
		}
	}
	return nil
}

// Columns returns the field-to-column map consumed by querysql.
func (c *Config) Columns() map[string]string {
	columns := make(map[string]string, len(c.Fields))
	for field, m := range c.Fields {
		columns[field] = m.Column
	}
	return columns
}

// isIdentifier reports whether s is an ASCII identifier: letter or
// underscore followed by letters, digits or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
