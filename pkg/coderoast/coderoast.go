// Package coderoast roasts your failures.
//
// It intercepts errors and panics and prints a humorous insult picked by
// the kind of failure and the current roast level, then lets the failure
// carry on exactly as it would have:
//
//	func main() {
//		defer coderoast.Recover()
//
//		if err := run(); err != nil {
//			coderoast.Exit(err)
//		}
//	}
//
// Individual functions can be wrapped instead:
//
//	save := coderoast.RoastFunction(store.Save)
//	err := save() // roasted, then returned unchanged
//
// The package-level functions act on a default instance built on first
// use. Use New for an independent one.
package coderoast

import (
	"sync"

	"github.com/utkarsh5026/coderoast/pkg/classify"
	"github.com/utkarsh5026/coderoast/pkg/config"
	"github.com/utkarsh5026/coderoast/pkg/level"
)

// Level is a roast severity.
type Level = level.Level

// Roast levels
const (
	Mild   = level.Mild
	Medium = level.Medium
	Brutal = level.Brutal
)

var (
	mu  sync.Mutex
	std *Instance
)

// Default returns the process-wide instance, creating it on first use.
func Default() *Instance {
	mu.Lock()
	defer mu.Unlock()

	if std == nil {
		std = New()
	}
	return std
}

// SetDefault replaces the process-wide instance and returns the previous
// one, which may be nil.
func SetDefault(i *Instance) *Instance {
	mu.Lock()
	defer mu.Unlock()

	prev := std
	std = i
	return prev
}

// Configure rebuilds the default instance from tc. Insults added so far
// are kept. See NewFromConfig for opts.
func Configure(tc *config.TypedConfig, opts ...Option) *Instance {
	mu.Lock()
	defer mu.Unlock()

	if std != nil {
		opts = append([]Option{WithStore(std.engine.Store())}, opts...)
	}
	std = NewFromConfig(tc, opts...)
	return std
}

// Activate turns interception on.
func Activate() {
	Default().engine.Activate()
}

// Deactivate turns interception off. Wrapped functions and the hook then
// pass failures through untouched.
func Deactivate() {
	Default().engine.Deactivate()
}

// IsActive reports whether interception is on.
func IsActive() bool {
	return Default().engine.IsActive()
}

// SetRoastLevel changes the roast level.
func SetRoastLevel(lvl Level) error {
	return Default().engine.SetRoastLevel(lvl)
}

// GetRoastLevel returns the roast level.
func GetRoastLevel() Level {
	return Default().engine.RoastLevel()
}

// GetInsult returns a random generic insult at the current level.
func GetInsult() (string, error) {
	return Default().engine.GetInsult()
}

// GetInsultByCategory returns a random insult from category, whatever
// the level.
func GetInsultByCategory(category string) (string, error) {
	return Default().engine.GetInsultByCategory(category)
}

// GetInsultByError returns an insult suited to kind at the current level.
func GetInsultByError(kind classify.Kind) (string, error) {
	return Default().engine.GetInsultByError(kind)
}

// GetAvailableCategories lists the insult categories.
func GetAvailableCategories() []string {
	return Default().engine.AvailableCategories()
}

// AddInsults adds generic insults and returns how many were added.
func AddInsults(texts []string) int {
	return Default().engine.AddInsults(texts)
}

// AddCategorizedInsult adds insults to category, creating it if needed.
func AddCategorizedInsult(category string, texts []string) int {
	return Default().engine.AddCategorizedInsult(category, texts)
}

// RoastFunction wraps fn so its failures are roasted before reaching the
// caller unchanged. The default instance is looked up on every call, so
// functions wrapped before Configure or SetDefault follow the instance
// that is current when they run.
func RoastFunction(fn func() error) func() error {
	return func() error {
		return Default().Wrapper().Call(fn)
	}
}

// RoastFunctionWithLevel is RoastFunction at a fixed level. The previous
// level is restored after every call.
func RoastFunctionWithLevel(lvl Level, fn func() error) (func() error, error) {
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return func() error {
		w, err := Default().LevelWrapper(lvl)
		if err != nil {
			return fn()
		}
		return w.Call(fn)
	}, nil
}

// Recover roasts a panic and re-raises it. It must be deferred directly:
//
//	defer coderoast.Recover()
func Recover() {
	v := recover()
	if v == nil {
		return
	}
	Default().hook.ReportPanic(v)
}

// Exit roasts err, prints it and exits with status 1. A nil err does
// nothing.
func Exit(err error) {
	Default().hook.Exit(err)
}
