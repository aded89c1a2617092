package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/coderoast/pkg/common/err"
	"github.com/utkarsh5026/coderoast/pkg/common/logger"
)

// Configuration file names
const (
	ProjectConfigJSON = ".coderoast.json"
	ProjectConfigYAML = ".coderoast.yaml"
	ProjectConfigYML  = ".coderoast.yml"
	UserConfigFile    = "config.json"
	EnvFileName       = ".env"
)

// Options locate the configuration sources.
type Options struct {
	// ProjectDir holds .coderoast.json / .coderoast.yaml and .env.
	// Empty disables the project level.
	ProjectDir string

	// UserPath is the user configuration file.
	// Empty disables the user level.
	UserPath string

	// EnvFile is a dotenv file read into the environment level.
	// Defaults to ProjectDir/.env.
	EnvFile string

	// Environ returns the process environment. Defaults to os.Environ.
	Environ func() []string

	Logger *slog.Logger
}

// DefaultOptions uses the working directory as the project and
// ~/.config/coderoast/config.json as the user file.
func DefaultOptions() Options {
	opts := Options{UserPath: DefaultUserConfigPath()}
	if wd, err := os.Getwd(); err == nil {
		opts.ProjectDir = wd
	}
	return opts
}

// DefaultUserConfigPath returns the user-level configuration path.
func DefaultUserConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "coderoast", UserConfigFile)
}

// ProjectConfigPath returns the project file in dir: the first of
// .coderoast.json, .coderoast.yaml and .coderoast.yml that exists, or
// .coderoast.json if none do.
func ProjectConfigPath(dir string) string {
	for _, name := range []string{ProjectConfigJSON, ProjectConfigYAML, ProjectConfigYML} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, ProjectConfigJSON)
}

// Manager resolves configuration across every level. It is safe for
// concurrent use.
type Manager struct {
	mu              sync.RWMutex
	stores          map[ConfigLevel]*Store
	commandLine     map[string]string
	environment     map[string]string
	builtinDefaults map[string]string
	validator       *Validator

	envFile string
	environ func() []string
	log     *slog.Logger
}

// NewManager creates a manager for opts. Nothing is read until Load.
func NewManager(opts Options) *Manager {
	m := &Manager{
		stores:          make(map[ConfigLevel]*Store),
		commandLine:     make(map[string]string),
		environment:     make(map[string]string),
		builtinDefaults: Defaults(),
		validator:       &Validator{},
		envFile:         opts.EnvFile,
		environ:         opts.Environ,
		log:             logger.OrDefault(opts.Logger),
	}

	if m.environ == nil {
		m.environ = os.Environ
	}
	if opts.ProjectDir != "" {
		m.stores[ProjectLevel] = NewStore(ProjectConfigPath(opts.ProjectDir), ProjectLevel, m.log)
		if m.envFile == "" {
			m.envFile = filepath.Join(opts.ProjectDir, EnvFileName)
		}
	}
	if opts.UserPath != "" {
		m.stores[UserLevel] = NewStore(opts.UserPath, UserLevel, m.log)
	}

	return m
}

// Load reads every file and the environment concurrently.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)

	for _, store := range m.stores {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return store.Load()
		})
	}

	var env map[string]string
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		values, err := loadEnvironment(m.envFile, m.environ())
		env = values
		return err
	})

	if loadErr := g.Wait(); loadErr != nil {
		return err.Wrap(loadErr, pkgName, "load")
	}

	m.environment = env
	m.log.Debug("configuration ready", "stores", len(m.stores), "env_keys", len(env))
	return nil
}

// Get returns the highest precedence entry for key, or nil.
func (m *Manager) Get(key string) *ConfigEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getUnsafe(key)
}

// GetAll returns the entry for key at every level that sets it, highest
// precedence first.
func (m *Manager) GetAll(key string) []*ConfigEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var all []*ConfigEntry

	if value, ok := m.commandLine[key]; ok {
		all = append(all, NewCommandLineEntry(key, value))
	}
	if value, ok := m.environment[key]; ok {
		all = append(all, NewEnvironmentEntry(key, value))
	}
	for _, lvl := range []ConfigLevel{ProjectLevel, UserLevel} {
		if store, ok := m.stores[lvl]; ok {
			if entry := store.Get(key); entry != nil {
				all = append(all, entry)
			}
		}
	}
	if value, ok := m.builtinDefaults[key]; ok {
		all = append(all, NewBuiltinEntry(key, value))
	}

	return all
}

// Set validates value and writes it to the file behind lvl.
func (m *Manager) Set(key, value string, lvl ConfigLevel) error {
	if err := m.validator.ValidateKeyValue(key, value); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	store, err := m.validateStore("set", key, lvl)
	if err != nil {
		return err
	}

	store.Set(key, value)
	return store.Save()
}

// Unset removes key from the file behind lvl. It returns a not-found
// error if that file doesn't set key.
func (m *Manager) Unset(key string, lvl ConfigLevel) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, err := m.validateStore("unset", key, lvl)
	if err != nil {
		return err
	}

	if !store.Unset(key) {
		return NewNotFoundError(key, store.Path())
	}
	return store.Save()
}

func (m *Manager) validateStore(operation string, key string, lvl ConfigLevel) (*Store, error) {
	if !lvl.CanWrite() {
		return nil, NewConfigError(operation, CodeReadOnlyErr, key, "", lvl.String(), ErrReadOnly)
	}

	store, exists := m.stores[lvl]
	if !exists {
		return nil, NewConfigError(operation, CodeNotFoundErr, key, "", lvl.String(), ErrNotFound)
	}

	return store, nil
}

// SetCommandLine sets a value for this run only. It is validated like
// any other value.
func (m *Manager) SetCommandLine(key, value string) error {
	if err := m.validator.ValidateKeyValue(key, value); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandLine[key] = value
	return nil
}

// List returns the effective entry of every key, sorted by key.
func (m *Manager) List() []*ConfigEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make(map[string]bool)
	for key := range m.commandLine {
		keys[key] = true
	}
	for key := range m.environment {
		keys[key] = true
	}
	for _, store := range m.stores {
		for _, key := range store.Keys() {
			keys[key] = true
		}
	}
	for key := range m.builtinDefaults {
		keys[key] = true
	}

	entries := make([]*ConfigEntry, 0, len(keys))
	for key := range keys {
		if entry := m.getUnsafe(key); entry != nil {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Validate checks every effective value and returns the failures.
func (m *Manager) Validate() []error {
	var errs []error
	for _, entry := range m.List() {
		if err := m.validator.ValidateKeyValue(entry.Key, entry.Value); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// GetStore returns the store for a specific level, or nil.
func (m *Manager) GetStore(lvl ConfigLevel) *Store {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stores[lvl]
}

// getUnsafe resolves key without locking. Caller must hold at least the
// read lock.
func (m *Manager) getUnsafe(key string) *ConfigEntry {
	if value, ok := m.commandLine[key]; ok {
		return NewCommandLineEntry(key, value)
	}
	if value, ok := m.environment[key]; ok {
		return NewEnvironmentEntry(key, value)
	}
	for _, lvl := range []ConfigLevel{ProjectLevel, UserLevel} {
		if store, ok := m.stores[lvl]; ok {
			if entry := store.Get(key); entry != nil {
				return entry
			}
		}
	}
	if value, ok := m.builtinDefaults[key]; ok {
		return NewBuiltinEntry(key, value)
	}
	return nil
}
