package coderoast

import (
	"io"
	"log/slog"
	"os"

	"github.com/utkarsh5026/coderoast/pkg/common/logger"
	"github.com/utkarsh5026/coderoast/pkg/config"
	"github.com/utkarsh5026/coderoast/pkg/insults"
	"github.com/utkarsh5026/coderoast/pkg/intercept"
	"github.com/utkarsh5026/coderoast/pkg/level"
	"github.com/utkarsh5026/coderoast/pkg/roast"
)

// Instance bundles an engine with the emitter and hook that report
// through it. The package-level functions use Default().
type Instance struct {
	engine  *roast.Engine
	emitter intercept.Emitter
	hook    *intercept.Hook
	log     *slog.Logger
}

type options struct {
	store       *insults.Store
	engineOpts  []roast.Option
	emitter     intercept.Emitter
	output      io.Writer
	installHook bool
	hookOpts    []intercept.HookOption
	log         *slog.Logger
}

// Option configures an Instance
type Option func(*options)

// WithStore shares an existing insult store.
func WithStore(s *insults.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithEngineOptions passes options through to roast.New.
func WithEngineOptions(opts ...roast.Option) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// WithEmitter replaces the default stderr emitter.
func WithEmitter(e intercept.Emitter) Option {
	return func(o *options) {
		o.emitter = e
	}
}

// WithOutput sets where the default emitter writes. Ignored when an
// emitter is given with WithEmitter.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithoutHook leaves the hook uninstalled: Recover and Exit then behave
// as if coderoast weren't there.
func WithoutHook() Option {
	return func(o *options) {
		o.installHook = false
	}
}

// WithHookOptions passes options through to intercept.NewHook.
func WithHookOptions(opts ...intercept.HookOption) Option {
	return func(o *options) {
		o.hookOpts = append(o.hookOpts, opts...)
	}
}

// WithLogger sets the diagnostics logger for every component.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// New creates an instance: an active engine at medium, roasts written to
// stderr and the hook installed once.
func New(opts ...Option) *Instance {
	o := collect(opts)
	log := logger.OrDefault(o.log)

	engineOpts := []roast.Option{roast.WithStore(o.store), roast.WithLogger(log)}
	engine := roast.New(append(engineOpts, o.engineOpts...)...)

	emitter := o.emitter
	if emitter == nil {
		out := o.output
		if out == nil {
			out = os.Stderr
		}
		emitter = intercept.NewWriterEmitter(out)
	}

	hookOpts := append([]intercept.HookOption{intercept.WithHookLogger(log)}, o.hookOpts...)
	hook := intercept.NewHook(engine, emitter, hookOpts...)
	if o.installHook {
		hook.Install()
	}

	return &Instance{engine: engine, emitter: emitter, hook: hook, log: log}
}

func collect(opts []Option) *options {
	o := &options{installHook: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewFromConfig creates an instance from resolved configuration. opts are
// applied after the configured values; WithOutput replaces the configured
// stream.
func NewFromConfig(tc *config.TypedConfig, opts ...Option) *Instance {
	var out io.Writer = os.Stderr
	if tc.Stream() == config.StreamStdout {
		out = os.Stdout
	}
	if o := collect(opts); o.output != nil {
		out = o.output
	}

	emitter := intercept.NewWriterEmitter(out,
		intercept.WithColor(tc.ColorMode()),
		intercept.WithCallSite(tc.CallSite()),
		intercept.WithSnippet(tc.Snippet()),
	)

	base := []Option{
		WithEmitter(emitter),
		WithEngineOptions(roast.WithLevel(tc.RoastLevel()), roast.WithActive(tc.Active())),
	}
	if !tc.HookEnabled() {
		base = append(base, WithoutHook())
	}
	return New(append(base, opts...)...)
}

// Engine returns the roast engine
func (i *Instance) Engine() *roast.Engine {
	return i.engine
}

// Hook returns the top-level failure hook
func (i *Instance) Hook() *intercept.Hook {
	return i.hook
}

// Emitter returns where roasts are written
func (i *Instance) Emitter() intercept.Emitter {
	return i.emitter
}

// Wrapper returns a bare function wrapper bound to this instance.
func (i *Instance) Wrapper() *intercept.Wrapper {
	return intercept.NewWrapper(i.engine, i.emitter, intercept.WithWrapperLogger(i.log))
}

// LevelWrapper returns a wrapper that roasts at lvl.
func (i *Instance) LevelWrapper(lvl level.Level) (*intercept.Wrapper, error) {
	return intercept.NewLevelWrapper(i.engine, i.emitter, lvl, intercept.WithWrapperLogger(i.log))
}
