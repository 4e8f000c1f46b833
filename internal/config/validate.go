package config

import (
	"fmt"
	"regexp"
)

// Target name: lowercase letters, digits, hyphens and underscores.
var targetNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_-]*$`)

// ValidationError represents a declaration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks declarations for structural errors: bad target names and
// unknown target types. Field values are validated later by the typed
// target constructors, which attach the full target address to the error.
// Warnings are returned for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	for name, tc := range cfg.Targets {
		if err := validateTargetName(name); err != nil {
			return nil, err
		}
		if err := validateTargetType(name, tc); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func validateTargetName(name string) error {
	if !targetNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   fmt.Sprintf("targets.%s", name),
			Message: "target name must match pattern ^[a-z_][a-z0-9_-]*$ (lowercase letters, digits, hyphens, underscores)",
		}
	}
	return nil
}

func validateTargetType(name string, tc TargetConfig) error {
	if tc.Type == "" {
		return &ValidationError{
			Field:   fmt.Sprintf("targets.%s.type", name),
			Message: "is required",
		}
	}
	for _, known := range TargetTypes() {
		if tc.Type == known {
			return nil
		}
	}
	return &ValidationError{
		Field:   fmt.Sprintf("targets.%s.type", name),
		Message: fmt.Sprintf("unknown target type %q (expected one of %v)", tc.Type, TargetTypes()),
	}
}
