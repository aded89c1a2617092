package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/utkarsh5026/coderoast/pkg/level"
)

// Validator provides semantic validation for configuration values
type Validator struct{}

// ValidateKeyValue validates a configuration key-value pair
// Returns nil if valid, or an error describing the validation failure
func (v *Validator) ValidateKeyValue(key, value string) error {
	section, name, ok := strings.Cut(key, ".")
	if !ok || section == "" || name == "" {
		return NewInvalidValueError(key, fmt.Errorf("configuration key must have section.name format"))
	}

	switch section {
	case "roast":
		return v.validateRoast(key, name, value)
	case "output":
		return v.validateOutput(key, name, value)
	default:
		return NewInvalidValueError(key, fmt.Errorf("unknown configuration section '%s'", section))
	}
}

// validateRoast validates roast.* configuration values
func (v *Validator) validateRoast(key, name, value string) error {
	switch name {
	case "level":
		if _, err := level.Parse(value); err != nil {
			return NewInvalidValueError(key, err)
		}
		return nil
	case "active", "hook":
		return v.validateBoolean(value, key)
	default:
		return unknownKey(key)
	}
}

// validateOutput validates output.* configuration values
func (v *Validator) validateOutput(key, name, value string) error {
	switch name {
	case "color":
		return v.validateOneOf(value, key, "auto", "always", "never")
	case "stream":
		return v.validateOneOf(value, key, StreamStderr, StreamStdout)
	case "snippet", "callsite":
		return v.validateBoolean(value, key)
	default:
		return unknownKey(key)
	}
}

func unknownKey(key string) error {
	return NewInvalidValueError(key, fmt.Errorf("unknown configuration key"))
}

func (v *Validator) validateBoolean(value, key string) error {
	lower := strings.ToLower(strings.TrimSpace(value))
	validValues := []string{"true", "false", "yes", "no", "1", "0", "on", "off"}
	if slices.Contains(validValues, lower) {
		return nil
	}
	return NewInvalidValueError(key, fmt.Errorf("must be a boolean (true/false/yes/no/1/0/on/off)"))
}

func (v *Validator) validateOneOf(value, key string, valid ...string) error {
	lower := strings.ToLower(strings.TrimSpace(value))
	if slices.Contains(valid, lower) {
		return nil
	}
	return NewInvalidValueError(key, fmt.Errorf("must be one of: %s", strings.Join(valid, ", ")))
}
