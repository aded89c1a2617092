package config

import (
	"strings"

	"github.com/utkarsh5026/coderoast/pkg/level"
)

// TypedConfig provides type-safe access to the coderoast settings.
// Values that fail to convert fall back to their builtin default.
type TypedConfig struct {
	manager *Manager
}

// NewTypedConfig creates a new TypedConfig wrapper around a Manager
func NewTypedConfig(manager *Manager) *TypedConfig {
	return &TypedConfig{
		manager: manager,
	}
}

// Manager returns the wrapped manager
func (tc *TypedConfig) Manager() *Manager {
	return tc.manager
}

// RoastLevel returns the configured roast level
func (tc *TypedConfig) RoastLevel() level.Level {
	entry := tc.manager.Get(KeyRoastLevel)
	if entry == nil {
		return level.Default
	}
	lvl, err := entry.AsRoastLevel()
	if err != nil {
		return level.Default
	}
	return lvl
}

// Active returns whether interception starts active
func (tc *TypedConfig) Active() bool {
	return tc.boolOr(KeyRoastActive, true)
}

// HookEnabled returns whether the top-level hook is installed
func (tc *TypedConfig) HookEnabled() bool {
	return tc.boolOr(KeyRoastHook, true)
}

// ColorMode returns auto, always or never
func (tc *TypedConfig) ColorMode() string {
	return tc.oneOf(KeyOutputColor, "auto", "always", "never")
}

// Stream returns where roasts are written: stderr or stdout
func (tc *TypedConfig) Stream() string {
	return tc.oneOf(KeyOutputStream, StreamStderr, StreamStdout)
}

// Snippet returns whether panics show the offending source line
func (tc *TypedConfig) Snippet() bool {
	return tc.boolOr(KeyOutputSnippet, false)
}

// CallSite returns whether panics show where they were raised
func (tc *TypedConfig) CallSite() bool {
	return tc.boolOr(KeyOutputCallSite, true)
}

// GetString returns a configuration value as a string
func (tc *TypedConfig) GetString(key string) string {
	entry := tc.manager.Get(key)
	if entry == nil {
		return ""
	}
	return entry.AsString()
}

// GetBool returns a configuration value as a boolean
func (tc *TypedConfig) GetBool(key string) (bool, error) {
	entry := tc.manager.Get(key)
	if entry == nil {
		return false, NewNotFoundError(key, "")
	}
	return entry.AsBoolean()
}

func (tc *TypedConfig) boolOr(key string, def bool) bool {
	entry := tc.manager.Get(key)
	if entry == nil {
		return def
	}
	val, err := entry.AsBoolean()
	if err != nil {
		return def
	}
	return val
}

// oneOf returns the value of key if it is one of valid, else valid[0].
func (tc *TypedConfig) oneOf(key string, valid ...string) string {
	entry := tc.manager.Get(key)
	if entry == nil {
		return valid[0]
	}
	val := strings.ToLower(strings.TrimSpace(entry.AsString()))
	for _, v := range valid {
		if v == val {
			return v
		}
	}
	return valid[0]
}
