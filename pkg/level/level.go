// Package level defines the roast severity tiers.
package level

import (
	"fmt"
	"strings"

	"github.com/utkarsh5026/coderoast/pkg/common/err"
)

// Level is a roast severity tier, ordered from gentlest to harshest.
type Level int

const (
	// Mild is for people with feelings.
	Mild Level = iota + 1

	// Medium is the default tier.
	Medium

	// Brutal holds nothing back.
	Brutal
)

// Default is the level a fresh engine starts at.
const Default = Medium

const pkgName = "level"

// CodeInvalidLevel marks a level outside Mild..Brutal.
const CodeInvalidLevel = "INVALID_LEVEL"

// All returns every valid level, gentlest first.
func All() []Level {
	return []Level{Mild, Medium, Brutal}
}

// String returns the lowercase name of the level
func (l Level) String() string {
	switch l {
	case Mild:
		return "mild"
	case Medium:
		return "medium"
	case Brutal:
		return "brutal"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// IsValid returns true if l is one of Mild, Medium or Brutal
func (l Level) IsValid() bool {
	return l >= Mild && l <= Brutal
}

// Validate returns an InvalidLevelError when l is not a valid level.
func (l Level) Validate() error {
	if !l.IsValid() {
		return NewInvalidLevelError("validate", l.String())
	}
	return nil
}

// Parse converts a level name (case-insensitive) to a Level.
func Parse(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mild":
		return Mild, nil
	case "medium":
		return Medium, nil
	case "brutal":
		return Brutal, nil
	default:
		return 0, NewInvalidLevelError("parse", s)
	}
}

// InvalidLevelError indicates a level outside the enumerated set.
type InvalidLevelError struct {
	base  *err.Error
	Value string
}

// NewInvalidLevelError creates an InvalidLevelError for the rejected value.
func NewInvalidLevelError(op, value string) error {
	return &InvalidLevelError{
		base: err.New(
			pkgName,
			CodeInvalidLevel,
			op,
			fmt.Sprintf("invalid roast level '%s' (want mild, medium or brutal)", value),
			nil,
		),
		Value: value,
	}
}

// Error implements the error interface
func (e *InvalidLevelError) Error() string {
	return e.base.Error()
}

// Unwrap returns the underlying error
func (e *InvalidLevelError) Unwrap() error {
	return e.base
}

// ErrInvalidLevel matches any InvalidLevelError through errors.Is.
var ErrInvalidLevel = err.New(pkgName, CodeInvalidLevel, "", "invalid roast level", nil)

// IsInvalidLevel returns true if e is, or wraps, an InvalidLevelError.
func IsInvalidLevel(e error) bool {
	return err.IsCode(e, CodeInvalidLevel)
}
