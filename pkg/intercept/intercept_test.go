package intercept

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/coderoast/pkg/common/logger"
	"github.com/utkarsh5026/coderoast/pkg/insults"
	"github.com/utkarsh5026/coderoast/pkg/level"
	"github.com/utkarsh5026/coderoast/pkg/roast"
)

var sinkInt int

// recorder is an Emitter that keeps every event.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Emit(ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *recorder) last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

// capture runs f and returns the value it panicked with, or nil.
func capture(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

// tieredEngine builds an engine whose generic pool only has leveled
// insults, so the emitted text names the level it was picked at.
func tieredEngine(t *testing.T) *roast.Engine {
	t.Helper()

	store := insults.NewStore(insults.WithPicker(func(int) int { return 0 }))
	for _, lvl := range level.All() {
		_, err := store.AddLeveledInsults("", lvl, []string{"generic " + lvl.String()})
		require.NoError(t, err)
		_, err = store.AddLeveledInsults(insults.CategoryMath, lvl, []string{"math " + lvl.String()})
		require.NoError(t, err)
	}
	return roast.New(roast.WithStore(store))
}

func TestWrapper_DeactivatedIsTransparent(t *testing.T) {
	engine := roast.New(roast.WithActive(false))
	rec := &recorder{}
	w := NewWrapper(engine, rec)

	want := errors.New("boom")
	got := w.Call(func() error { return want })
	assert.Same(t, want, got)

	v := capture(func() {
		_ = w.Call(func() error { panic("kaboom") })
	})
	assert.Equal(t, "kaboom", v)
	assert.Equal(t, 0, rec.count())
}

func TestWrapper_ReactivatedRoastsAndReturnsSameError(t *testing.T) {
	engine := roast.New(roast.WithActive(false))
	rec := &recorder{}
	w := NewWrapper(engine, rec)
	want := errors.New("boom")

	require.Same(t, want, w.Call(func() error { return want }))
	require.Equal(t, 0, rec.count())

	engine.Activate()
	got := w.Call(func() error { return want })

	assert.Same(t, want, got)
	require.Equal(t, 1, rec.count())
	ev := rec.last()
	assert.Same(t, want, ev.Failure)
	assert.False(t, ev.Panicked)
	assert.Nil(t, ev.Site)
	assert.NotEmpty(t, ev.Roast.Text)
}

func TestWrapper_SuccessEmitsNothing(t *testing.T) {
	rec := &recorder{}
	w := NewWrapper(roast.New(), rec)

	assert.NoError(t, w.Call(func() error { return nil }))
	assert.Equal(t, 0, rec.count())
}

func TestWrapper_RepanicsOriginalValue(t *testing.T) {
	engine := tieredEngine(t)
	rec := &recorder{}
	w := NewWrapper(engine, rec)

	v := capture(func() {
		_ = w.Call(func() error {
			zero := 0
			sinkInt = 1 / zero
			return nil
		})
	})

	require.NotNil(t, v)
	rtErr, ok := v.(error)
	require.True(t, ok)
	assert.Contains(t, rtErr.Error(), "divide by zero")

	require.Equal(t, 1, rec.count())
	ev := rec.last()
	assert.True(t, ev.Panicked)
	assert.Equal(t, v, ev.Failure)
	assert.Equal(t, insults.CategoryMath, ev.Roast.Category)
	assert.Equal(t, "math medium", ev.Roast.Text)
	require.NotNil(t, ev.Site)
	assert.Contains(t, ev.Site.Function, "TestWrapper_RepanicsOriginalValue")
}

func TestLevelWrapper_BrutalThenRestores(t *testing.T) {
	engine := tieredEngine(t)
	require.NoError(t, engine.SetRoastLevel(level.Mild))
	rec := &recorder{}

	w, err := NewLevelWrapper(engine, rec, level.Brutal)
	require.NoError(t, err)
	lvl, forced := w.Level()
	assert.True(t, forced)
	assert.Equal(t, level.Brutal, lvl)

	want := errors.New("boom")
	assert.Same(t, want, w.Call(func() error { return want }))

	require.Equal(t, 1, rec.count())
	assert.Equal(t, level.Brutal, rec.last().Roast.Level)
	assert.Equal(t, "generic brutal", rec.last().Roast.Text)
	assert.Equal(t, level.Mild, engine.RoastLevel())
}

func TestLevelWrapper_RestoresAfterPanic(t *testing.T) {
	engine := tieredEngine(t)
	rec := &recorder{}
	w, err := NewLevelWrapper(engine, rec, level.Brutal)
	require.NoError(t, err)

	v := capture(func() {
		_ = w.Call(func() error {
			zero := 0
			sinkInt = 1 / zero
			return nil
		})
	})

	require.NotNil(t, v)
	assert.Equal(t, "math brutal", rec.last().Roast.Text)
	assert.Equal(t, level.Medium, engine.RoastLevel())
}

func TestLevelWrapper_SuccessLeavesLevelAlone(t *testing.T) {
	engine := roast.New()
	w, err := NewLevelWrapper(engine, &recorder{}, level.Mild)
	require.NoError(t, err)

	require.NoError(t, w.Call(func() error {
		assert.Equal(t, level.Mild, engine.RoastLevel())
		return nil
	}))
	assert.Equal(t, level.Medium, engine.RoastLevel())
}

func TestNewLevelWrapper_InvalidLevel(t *testing.T) {
	w, err := NewLevelWrapper(roast.New(), &recorder{}, level.Level(5))
	assert.Nil(t, w)
	assert.True(t, level.IsInvalidLevel(err))
}

func TestWrap_PreservesResults(t *testing.T) {
	rec := &recorder{}
	w := NewWrapper(roast.New(), rec)

	double := Wrap1(w, func(n int) (int, error) {
		if n < 0 {
			return 0, os.ErrInvalid
		}
		return n * 2, nil
	})

	got, err := double(21)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = double(-1)
	assert.ErrorIs(t, err, os.ErrInvalid)
	assert.Equal(t, 1, rec.count())

	greet := Wrap(w, func() (string, error) { return "hi", nil })
	s, err := greet()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestWrapper_Func(t *testing.T) {
	rec := &recorder{}
	w := NewWrapper(roast.New(), rec)
	want := errors.New("later")

	fn := w.Func(func() error { return want })
	assert.Equal(t, 0, rec.count(), "wrapping alone does not call fn")
	assert.Same(t, want, fn())
	assert.Equal(t, 1, rec.count())
}

func TestWrapper_EmitterFaultsNeverMaskFailure(t *testing.T) {
	boom := EmitterFunc(func(Event) error { panic("emitter exploded") })
	w := NewWrapper(roast.New(), boom)

	want := errors.New("real failure")
	assert.Same(t, want, w.Call(func() error { return want }))

	v := capture(func() {
		_ = w.Call(func() error { panic("real panic") })
	})
	assert.Equal(t, "real panic", v)

	failing := EmitterFunc(func(Event) error { return errors.New("write failed") })
	w = NewWrapper(roast.New(), failing)
	assert.Same(t, want, w.Call(func() error { return want }))
}

func TestWrapper_EmptyStoreStillPropagates(t *testing.T) {
	rec := &recorder{}
	w := NewWrapper(roast.New(roast.WithStore(insults.NewStore())), rec)

	want := errors.New("boom")
	assert.Same(t, want, w.Call(func() error { return want }))
	assert.Equal(t, 0, rec.count())
}

func TestWrapper_EmptyStoreLogsErrorCode(t *testing.T) {
	logs := &bytes.Buffer{}
	log := logger.New(logger.Config{Level: logger.LevelDebug, Format: logger.FormatText, Output: logs})
	w := NewWrapper(roast.New(roast.WithStore(insults.NewStore())), &recorder{}, WithWrapperLogger(log))

	_ = w.Call(func() error { return errors.New("boom") })

	out := logs.String()
	assert.Contains(t, out, "no insult available")
	assert.Contains(t, out, "code="+insults.CodeEmptyPool)
	assert.Contains(t, out, "package=insults")
}

func newTestHook(engine *roast.Engine, rec Emitter) (*Hook, *bytes.Buffer, *[]int) {
	stderr := &bytes.Buffer{}
	var codes []int
	h := NewHook(engine, rec,
		WithErrorOutput(stderr),
		WithExitFunc(func(code int) { codes = append(codes, code) }),
	)
	return h, stderr, &codes
}

func TestHook_UninstallEmpty(t *testing.T) {
	h, _, _ := newTestHook(roast.New(), &recorder{})

	err := h.Uninstall()
	assert.True(t, IsNotInstalled(err))
	assert.ErrorIs(t, err, ErrNotInstalled)
}

func TestHook_ExitWithoutInstallUsesBase(t *testing.T) {
	rec := &recorder{}
	h, stderr, codes := newTestHook(roast.New(), rec)

	h.Exit(errors.New("boom"))

	assert.Equal(t, "Error: boom\n", stderr.String())
	assert.Equal(t, []int{1}, *codes)
	assert.Equal(t, 0, rec.count())
}

func TestHook_ExitNil(t *testing.T) {
	h, stderr, codes := newTestHook(roast.New(), &recorder{})
	h.Install()

	h.Exit(nil)

	assert.Empty(t, stderr.String())
	assert.Empty(t, *codes)
}

func TestHook_ExitRoastsThenChains(t *testing.T) {
	rec := &recorder{}
	h, stderr, codes := newTestHook(roast.New(), rec)

	h.Install()
	h.Install()
	assert.Equal(t, 2, h.Installed())

	h.Exit(errors.New("boom"))
	assert.Equal(t, 2, rec.count(), "each installed reporter roasts once before chaining")
	assert.Equal(t, "Error: boom\n", stderr.String())
	assert.Equal(t, []int{1}, *codes, "only the base reporter exits")

	require.NoError(t, h.Uninstall())
	assert.Equal(t, 1, h.Installed())

	h.Exit(errors.New("again"))
	assert.Equal(t, 3, rec.count())

	require.NoError(t, h.Uninstall())
	assert.True(t, IsNotInstalled(h.Uninstall()))
}

func TestHook_RecoverRoastsAndRepanics(t *testing.T) {
	rec := &recorder{}
	h, _, _ := newTestHook(roast.New(), rec)
	h.Install()

	v := capture(func() {
		defer h.Recover()
		panic("kaboom")
	})

	assert.Equal(t, "kaboom", v)
	require.Equal(t, 1, rec.count())
	ev := rec.last()
	assert.True(t, ev.Panicked)
	assert.Equal(t, "kaboom", ev.Failure)
	require.NotNil(t, ev.Site)
	assert.Contains(t, ev.Site.Function, "TestHook_RecoverRoastsAndRepanics")
}

func TestHook_RecoverWithoutPanic(t *testing.T) {
	rec := &recorder{}
	h, _, _ := newTestHook(roast.New(), rec)
	h.Install()

	v := capture(func() {
		defer h.Recover()
	})

	assert.Nil(t, v)
	assert.Equal(t, 0, rec.count())
}

func TestHook_Inactive(t *testing.T) {
	engine := roast.New()
	rec := &recorder{}
	h, stderr, codes := newTestHook(engine, rec)
	h.Install()
	engine.Deactivate()

	v := capture(func() {
		defer h.Recover()
		panic("kaboom")
	})
	h.Exit(errors.New("boom"))

	assert.Equal(t, "kaboom", v)
	assert.Equal(t, "Error: boom\n", stderr.String())
	assert.Equal(t, []int{1}, *codes)
	assert.Equal(t, 0, rec.count())
}

func TestWriterEmitter(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main\n\treturn a / b\n"), 0o644))

	buf := &bytes.Buffer{}
	e := NewWriterEmitter(buf, WithColor(ColorNever), WithSnippet(true))

	err := e.Emit(Event{
		Roast:    roast.Roast{Category: "math", Level: level.Brutal, Text: "You divided by zero."},
		Failure:  "runtime error: integer divide by zero",
		Panicked: true,
		Site:     &CallSite{Function: "main.divide", File: file, Line: 2},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "ROAST")
	assert.Contains(t, out, "You divided by zero.")
	assert.Contains(t, out, "[brutal/math]")
	assert.Contains(t, out, "at main.divide (main.go:2)")
	assert.Contains(t, out, "return a / b")
	assert.NotContains(t, out, "\x1b[", "colour is off")
}

func TestWriterEmitter_NoSiteLines(t *testing.T) {
	buf := &bytes.Buffer{}
	e := NewWriterEmitter(buf, WithColor(ColorNever), WithCallSite(false))

	require.NoError(t, e.Emit(Event{
		Roast: roast.Roast{Category: "general", Level: level.Mild, Text: "meh"},
		Site:  &CallSite{Function: "main.main", File: "main.go", Line: 1},
	}))

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.NotContains(t, buf.String(), "main.main")
}

func TestPanicSite_OutsidePanic(t *testing.T) {
	site, ok := panicSite()
	assert.False(t, ok)
	assert.Nil(t, site)
}
