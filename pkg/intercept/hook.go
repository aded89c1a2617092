package intercept

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/utkarsh5026/coderoast/pkg/roast"
)

// reporter handles a failure that reached the top of the program.
type reporter struct {
	panics func(v any, site *CallSite)
	errors func(err error)
}

// Hook is a stack of top-level failure reporters. Each Install pushes a
// roasting reporter that runs and then defers to whatever was installed
// before it; the bottom of the stack is the base behaviour.
type Hook struct {
	roaster

	mu     sync.Mutex
	stack  []reporter
	exit   func(code int)
	stderr io.Writer
}

// HookOption configures a Hook
type HookOption func(*Hook)

// WithExitFunc replaces os.Exit in the base error reporter.
func WithExitFunc(exit func(code int)) HookOption {
	return func(h *Hook) {
		if exit != nil {
			h.exit = exit
		}
	}
}

// WithErrorOutput sets where the base error reporter prints. Defaults to os.Stderr.
func WithErrorOutput(w io.Writer) HookOption {
	return func(h *Hook) {
		if w != nil {
			h.stderr = w
		}
	}
}

// WithHookLogger sets the diagnostics logger
func WithHookLogger(l *slog.Logger) HookOption {
	return func(h *Hook) {
		h.log = l
	}
}

// NewHook creates a hook with nothing installed. A nil engine gets a fresh
// roast.Engine; a nil emitter writes to os.Stderr.
func NewHook(engine *roast.Engine, emitter Emitter, opts ...HookOption) *Hook {
	h := &Hook{
		exit:   os.Exit,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.roaster = newRoaster(engine, emitter, h.log)
	return h
}

// Install pushes a roasting reporter on top of the current one.
func (h *Hook) Install() {
	h.mu.Lock()
	defer h.mu.Unlock()

	prev := h.currentLocked()
	h.stack = append(h.stack, reporter{
		panics: func(v any, site *CallSite) {
			if h.active() {
				h.roast(v, true, site)
			}
			prev.panics(v, site)
		},
		errors: func(err error) {
			if h.active() {
				h.roast(err, false, nil)
			}
			prev.errors(err)
		},
	})

	h.log.Debug("roast hook installed", "depth", len(h.stack))
}

// Uninstall pops the most recently installed reporter. It returns
// ErrNotInstalled when the stack is empty.
func (h *Hook) Uninstall() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.stack) == 0 {
		return ErrNotInstalled
	}
	h.stack = h.stack[:len(h.stack)-1]

	h.log.Debug("roast hook uninstalled", "depth", len(h.stack))
	return nil
}

// Installed returns how many reporters are installed.
func (h *Hook) Installed() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.stack)
}

// Recover must be deferred directly:
//
//	defer hook.Recover()
//
// A panic is roasted by the installed reporters and then re-raised with
// the original value, so the program still crashes with the stock
// traceback and exit status.
func (h *Hook) Recover() {
	v := recover()
	if v == nil {
		return
	}
	site, _ := panicSite()
	h.current().panics(v, site)
}

// ReportPanic sends v through the installed reporters. It re-panics with v
// once they are done.
func (h *Hook) ReportPanic(v any) {
	site, _ := panicSite()
	h.current().panics(v, site)
}

// Exit reports an error returned out of main: roast it, print
// "Error: <err>" and exit with status 1. A nil error does nothing.
func (h *Hook) Exit(err error) {
	if err == nil {
		return
	}
	h.current().errors(err)
}

func (h *Hook) current() reporter {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentLocked()
}

func (h *Hook) currentLocked() reporter {
	if n := len(h.stack); n > 0 {
		return h.stack[n-1]
	}
	return h.base()
}

// base is the behaviour without any roasting.
func (h *Hook) base() reporter {
	return reporter{
		panics: func(v any, _ *CallSite) {
			panic(v)
		},
		errors: func(err error) {
			fmt.Fprintf(h.stderr, "Error: %v\n", err)
			h.exit(1)
		},
	}
}
