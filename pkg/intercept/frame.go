package intercept

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

const maxPanicDepth = 64

// CallSite is the source location a panic was raised from.
type CallSite struct {
	Function string
	File     string
	Line     int
}

// String returns "pkg.Func (file.go:12)".
func (c CallSite) String() string {
	return fmt.Sprintf("%s (%s:%d)", c.Function, filepath.Base(c.File), c.Line)
}

// panicSite finds the first non-runtime frame below runtime.gopanic. It
// only finds one when called while a panic is unwinding, i.e. from a
// deferred function or something it calls.
func panicSite() (*CallSite, bool) {
	pcs := make([]uintptr, maxPanicDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	inPanic := false
	for {
		f, more := frames.Next()
		switch {
		case f.Function == "runtime.gopanic":
			inPanic = true
		case inPanic && !strings.HasPrefix(f.Function, "runtime."):
			return &CallSite{Function: f.Function, File: f.File, Line: f.Line}, true
		}
		if !more {
			return nil, false
		}
	}
}
