package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/coderoast/pkg/coderoast"
	"github.com/utkarsh5026/coderoast/pkg/common/logger"
	"github.com/utkarsh5026/coderoast/pkg/config"
)

// app carries the flag values and what setup builds from them.
type app struct {
	logLevel   string
	logFormat  string
	verbose    bool
	roastLevel string
	noRoast    bool

	// Overrides for tests; zero values use config.DefaultOptions.
	projectDir string
	userPath   string
	environ    func() []string

	manager *config.Manager
	roaster *coderoast.Instance
}

// setup configures logging, loads configuration and rebuilds the default
// coderoast instance from it.
func (a *app) setup(cmd *cobra.Command) error {
	a.setupLogging(cmd.ErrOrStderr())

	opts := config.DefaultOptions()
	if a.projectDir != "" {
		opts.ProjectDir = a.projectDir
	}
	if a.userPath != "" {
		opts.UserPath = a.userPath
	}
	opts.Environ = a.environ
	opts.Logger = logger.Default

	a.manager = config.NewManager(opts)
	if err := a.manager.Load(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if a.roastLevel != "" {
		if err := a.manager.SetCommandLine(config.KeyRoastLevel, a.roastLevel); err != nil {
			return err
		}
	}
	if a.noRoast {
		if err := a.manager.SetCommandLine(config.KeyRoastActive, "false"); err != nil {
			return err
		}
	}

	for _, err := range a.manager.Validate() {
		logger.Warn("ignoring invalid configuration value", "error", err)
	}

	tc := config.NewTypedConfig(a.manager)
	out := cmd.ErrOrStderr()
	if tc.Stream() == config.StreamStdout {
		out = cmd.OutOrStdout()
	}

	a.roaster = coderoast.Configure(tc, coderoast.WithOutput(out), coderoast.WithLogger(logger.Default))
	logger.Debug("coderoast configured",
		"level", tc.RoastLevel(), "active", tc.Active(), "hook", tc.HookEnabled(), "stream", tc.Stream())
	return nil
}

func (a *app) setupLogging(w io.Writer) {
	lvl := logger.ParseLevel(a.logLevel)
	if a.verbose {
		lvl = logger.LevelDebug
	}

	logger.Default = logger.New(logger.Config{
		Level:  lvl,
		Format: logger.ParseFormat(a.logFormat),
		Output: w,
	})
}

// writableLevel parses a --scope flag.
func writableLevel(scope string) (config.ConfigLevel, error) {
	lvl, err := config.ParseLevel(scope)
	if err != nil {
		return 0, fmt.Errorf("invalid scope '%s' (want project or user)", scope)
	}
	if !lvl.CanWrite() {
		return 0, fmt.Errorf("scope '%s' is read-only (want project or user)", scope)
	}
	return lvl, nil
}
