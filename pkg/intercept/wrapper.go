package intercept

import (
	"log/slog"

	"github.com/utkarsh5026/coderoast/pkg/level"
	"github.com/utkarsh5026/coderoast/pkg/roast"
)

// Wrapper roasts the failures of the functions it wraps and hands them
// back unchanged: errors are returned as the same value, panics are
// re-raised with the same value.
type Wrapper struct {
	roaster

	level    level.Level
	override bool
}

// WrapperOption configures a Wrapper
type WrapperOption func(*Wrapper)

// WithWrapperLogger sets the diagnostics logger
func WithWrapperLogger(l *slog.Logger) WrapperOption {
	return func(w *Wrapper) {
		w.log = l
	}
}

// NewWrapper creates a wrapper that roasts at whatever level the engine
// is at when the failure happens.
func NewWrapper(engine *roast.Engine, emitter Emitter, opts ...WrapperOption) *Wrapper {
	w := &Wrapper{}
	for _, opt := range opts {
		opt(w)
	}
	w.roaster = newRoaster(engine, emitter, w.log)
	return w
}

// NewLevelWrapper creates a wrapper that switches the engine to lvl for
// the duration of each wrapped call and restores the previous level
// afterwards, whether the call fails or not.
func NewLevelWrapper(engine *roast.Engine, emitter Emitter, lvl level.Level, opts ...WrapperOption) (*Wrapper, error) {
	if err := lvl.Validate(); err != nil {
		return nil, err
	}

	w := NewWrapper(engine, emitter, opts...)
	w.level = lvl
	w.override = true
	return w, nil
}

// Level returns the level the wrapper forces, if any.
func (w *Wrapper) Level() (level.Level, bool) {
	return w.level, w.override
}

// Call runs fn under the wrapper.
func (w *Wrapper) Call(fn func() error) error {
	_, err := invoke(w, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// Func returns fn wrapped.
func (w *Wrapper) Func(fn func() error) func() error {
	return func() error {
		return w.Call(fn)
	}
}

// Wrap returns fn wrapped, keeping its result type.
func Wrap[R any](w *Wrapper, fn func() (R, error)) func() (R, error) {
	return func() (R, error) {
		return invoke(w, fn)
	}
}

// Wrap1 returns fn wrapped, keeping its argument and result types.
func Wrap1[A, R any](w *Wrapper, fn func(A) (R, error)) func(A) (R, error) {
	return func(a A) (R, error) {
		return invoke(w, func() (R, error) {
			return fn(a)
		})
	}
}

func invoke[R any](w *Wrapper, fn func() (R, error)) (result R, err error) {
	if !w.active() {
		return fn()
	}

	if w.override {
		restore, oerr := w.engine.Override(w.level)
		if oerr != nil {
			w.log.Debug("level override rejected", "level", w.level, "error", oerr)
		}
		defer restore()
	}

	defer func() {
		if v := recover(); v != nil {
			site, _ := panicSite()
			w.roast(v, true, site)
			panic(v)
		}
	}()

	result, err = fn()
	if err != nil {
		w.roast(err, false, nil)
	}
	return result, err
}
