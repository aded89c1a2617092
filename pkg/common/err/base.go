package err

import (
	"errors"
	"strings"
)

// Error is the base error type shared by every coderoast package.
//
// Package-specific errors wrap an *Error and add their own fields
// (the offending category, the rejected level, ...). Matching is done by
// Code so callers can write errors.Is(err, insults.ErrUnknownCategory)
// without caring which operation produced it.
type Error struct {
	// Package identifies the originating package (e.g., "insults", "roast", "config")
	Package string

	// Code is a machine-readable error code (e.g., CodeNotFound, CodeValidation).
	Code string

	// Op is the operation being performed, e.g. "get_by_category" or "set_level".
	Op string

	// Message provides human-readable context.
	Message string

	// Err is the wrapped error. Nil for leaf errors.
	Err error
}

// Error implements the error interface.
// Format: [package][code] operation: message: wrapped_error
func (e *Error) Error() string {
	var parts []string

	var prefix strings.Builder
	if e.Package != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Package)
		prefix.WriteString("]")
	}
	if e.Code != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Code)
		prefix.WriteString("]")
	}
	if prefix.Len() > 0 {
		parts = append(parts, prefix.String())
	}

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, ": ")

	if e.Err != nil {
		if result != "" {
			result += ": " + e.Err.Error()
		} else {
			result = e.Err.Error()
		}
	}

	return result
}

// Unwrap returns the underlying error for errors.Is() and errors.As() support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two base errors when both carry the same non-empty code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// New creates a new base error with the specified fields.
func New(pkg, code, op, message string, err error) *Error {
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps an error with package and operation context.
// Returns nil if err is nil.
func Wrap(err error, pkg, op string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Package: pkg,
		Op:      op,
		Err:     err,
	}
}

// Standard error codes used across packages.
const (
	// CodeNotFound indicates a requested resource was not found
	CodeNotFound = "NOT_FOUND"

	// CodeValidation indicates data validation failed
	CodeValidation = "VALIDATION"

	// CodeInvalidFormat indicates data is in an invalid format
	CodeInvalidFormat = "INVALID_FORMAT"

	// CodeReadOnly indicates an attempt to modify read-only data
	CodeReadOnly = "READ_ONLY"
)

// IsCode checks if an error, or anything it wraps, has a specific error code.
func IsCode(err error, code string) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the first non-empty code found in the chain, so a Wrap
// around a coded error still reports the inner code.
// Returns empty string if there is none.
func GetCode(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return ""
		}
		if e.Code != "" {
			return e.Code
		}
		err = e.Err
	}
	return ""
}

// GetPackage extracts the package name from an error.
func GetPackage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Package
	}
	return ""
}

// GetOp extracts the operation from an error.
func GetOp(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}
