// Package target defines the shell target types: test and source targets,
// the generators that expand into them, and the shell command execution
// descriptors handed to the build-graph engine.
package target

import (
	"fmt"

	"shellbuild/internal/address"
)

// InvalidFieldError reports a field value rejected at construction time.
// It names the owning target, the field, and the offending value, and
// aborts only that target's definition.
type InvalidFieldError struct {
	Address address.Address
	Field   string
	Value   interface{}
	Message string
}

func (e *InvalidFieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("the `%s` field in target %s %s", e.Field, e.Address, e.Message)
	}
	return fmt.Sprintf("the value for the `%s` field in target %s %s, but was %v",
		e.Field, e.Address, e.Message, e.Value)
}

// ValidateTimeout enforces the shared rule for every timeout field: an
// absent value passes through as unbounded, a present value must be
// positive. The same rule backs the `timeout` field on test targets,
// generators, and shell commands.
func ValidateTimeout(raw *int, owner address.Address, field string) (*int, error) {
	if raw == nil {
		return nil, nil
	}
	if *raw < 1 {
		return nil, &InvalidFieldError{
			Address: owner,
			Field:   field,
			Value:   *raw,
			Message: "must be > 0",
		}
	}
	return raw, nil
}

// validateRequiredString rejects an empty required string field.
func validateRequiredString(value, field string, owner address.Address) error {
	if value == "" {
		return &InvalidFieldError{
			Address: owner,
			Field:   field,
			Message: "is required and must not be empty",
		}
	}
	return nil
}

// validateRequiredStrings rejects an empty or absent required string set.
func validateRequiredStrings(values []string, field string, owner address.Address) error {
	if len(values) == 0 {
		return &InvalidFieldError{
			Address: owner,
			Field:   field,
			Message: "is required and must not be empty",
		}
	}
	for _, v := range values {
		if v == "" {
			return &InvalidFieldError{
				Address: owner,
				Field:   field,
				Value:   values,
				Message: "must not contain empty entries",
			}
		}
	}
	return nil
}
