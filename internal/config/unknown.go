package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// loadWithWarnings parses JSON declaration data and returns any unknown
// field warnings. Unknown fields are ignored, not fatal.
func loadWithWarnings(data []byte) (*Config, []string, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse declaration file: %w", err)
	}

	return &cfg, detectUnknownFields(data), nil
}

// detectUnknownFields compares raw JSON with known struct fields.
func detectUnknownFields(data []byte) []string {
	var warnings []string

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// The data was already parsed successfully, so this indicates an
		// internal inconsistency. Surface it rather than hide it.
		return []string{"internal: failed to re-parse declarations for unknown field detection"}
	}

	knownTopLevel := getJSONFields(reflect.TypeOf(Config{}))
	for key := range raw {
		if key == "$schema" {
			continue // $schema is explicitly allowed and ignored
		}
		if !knownTopLevel[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	if targetsRaw, ok := raw["targets"]; ok {
		warnings = append(warnings, checkTargetsUnknownFields(targetsRaw)...)
	}

	return warnings
}

func checkTargetsUnknownFields(data json.RawMessage) []string {
	var warnings []string

	var targets map[string]json.RawMessage
	if err := json.Unmarshal(data, &targets); err != nil {
		return []string{"internal: failed to re-parse targets for unknown field detection"}
	}

	knownTargetFields := getJSONFields(reflect.TypeOf(TargetConfig{}))
	for targetName, targetRaw := range targets {
		var targetFields map[string]json.RawMessage
		if err := json.Unmarshal(targetRaw, &targetFields); err != nil {
			continue
		}
		for key := range targetFields {
			if !knownTargetFields[key] {
				warnings = append(warnings, fmt.Sprintf("unknown field %q in target %q (ignored)", key, targetName))
			}
		}
	}

	return warnings
}

// getJSONFields returns a map of known JSON field names for a struct type.
func getJSONFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			fields[name] = true
		}
	}
	return fields
}
