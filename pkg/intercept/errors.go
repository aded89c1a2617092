package intercept

import (
	"github.com/utkarsh5026/coderoast/pkg/common/err"
)

const (
	// Package name for error reporting
	pkgName = "intercept"

	// CodeNotInstalled is returned when uninstalling a hook with nothing installed
	CodeNotInstalled = "NOT_INSTALLED"
)

// ErrNotInstalled is returned by Hook.Uninstall when no reporter is installed.
var ErrNotInstalled = err.New(pkgName, CodeNotInstalled, "uninstall", "no roast hook installed", nil)

// IsNotInstalled returns true if e is, or wraps, ErrNotInstalled
func IsNotInstalled(e error) bool {
	return err.IsCode(e, CodeNotInstalled)
}
