package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"shellbuild/internal/schema"
)

// Load reads and parses a declaration file. The encoding is keyed on the
// file extension: .yaml/.yml files are parsed as YAML, everything else as
// JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file: %w", err)
	}

	var cfg Config
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse declaration file: %w", err)
		}
		return &cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse declaration file: %w", err)
	}
	return &cfg, nil
}

// LoadAndValidate reads a declaration file, applies defaults, validates,
// and returns warnings. JSON files are additionally checked against the
// embedded JSON Schema and scanned for unknown keys.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read declaration file: %w", err)
	}

	var cfg *Config
	var unknownWarnings []string
	if isYAML(path) {
		cfg = &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, nil, fmt.Errorf("failed to parse declaration file: %w", err)
		}
	} else {
		if err := schema.ValidateBuildConfig(data); err != nil {
			return nil, nil, err
		}
		cfg, unknownWarnings, err = loadWithWarnings(data)
		if err != nil {
			return nil, nil, err
		}
	}

	applyDefaults(cfg)

	validationWarnings, err := Validate(cfg)

	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, err
	}

	return cfg, allWarnings, nil
}

func isYAML(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
