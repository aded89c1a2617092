package insults

import (
	"fmt"

	"github.com/utkarsh5026/coderoast/pkg/common/err"
)

const (
	// Package name for error reporting
	pkgName = "insults"
)

// Error codes for insult retrieval
const (
	CodeUnknownCategory = "UNKNOWN_CATEGORY"
	CodeEmptyPool       = "EMPTY_POOL"
)

// UnknownCategoryError indicates a category key that was never registered
type UnknownCategoryError struct {
	baseError *err.Error
	Category  string
}

// NewUnknownCategoryError creates a new unknown category error
func NewUnknownCategoryError(op, category string) error {
	return &UnknownCategoryError{
		baseError: err.New(
			pkgName,
			CodeUnknownCategory,
			op,
			fmt.Sprintf("category '%s' is not registered", category),
			nil,
		),
		Category: category,
	}
}

// Error implements the error interface
func (e *UnknownCategoryError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *UnknownCategoryError) Unwrap() error {
	return e.baseError
}

// EmptyPoolError indicates there was nothing to pick from
type EmptyPoolError struct {
	baseError *err.Error
	Category  string
}

// NewEmptyPoolError creates a new empty pool error. An empty category
// means the generic pool.
func NewEmptyPoolError(op, category string) error {
	msg := "no insults available"
	if category != "" {
		msg = fmt.Sprintf("no insults available in category '%s'", category)
	}

	return &EmptyPoolError{
		baseError: err.New(pkgName, CodeEmptyPool, op, msg, nil),
		Category:  category,
	}
}

// Error implements the error interface
func (e *EmptyPoolError) Error() string {
	return e.baseError.Error()
}

// Unwrap returns the underlying error
func (e *EmptyPoolError) Unwrap() error {
	return e.baseError
}

// Sentinel errors for errors.Is checks
var (
	ErrUnknownCategory = err.New(pkgName, CodeUnknownCategory, "", "category is not registered", nil)
	ErrEmptyPool       = err.New(pkgName, CodeEmptyPool, "", "no insults available", nil)
)

// IsUnknownCategory returns true if e is, or wraps, an UnknownCategoryError
func IsUnknownCategory(e error) bool {
	return err.IsCode(e, CodeUnknownCategory)
}

// IsEmptyPool returns true if e is, or wraps, an EmptyPoolError
func IsEmptyPool(e error) bool {
	return err.IsCode(e, CodeEmptyPool)
}
