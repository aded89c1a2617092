package config

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/utkarsh5026/coderoast/pkg/common/fileops"
	"github.com/utkarsh5026/coderoast/pkg/common/logger"
)

// Store reads and writes one configuration file.
// Writes are atomic so a crash never leaves a half-written file behind.
type Store struct {
	mu      sync.RWMutex
	path    string
	level   ConfigLevel
	entries map[string]*ConfigEntry
	parser  *Parser
	log     *slog.Logger
}

// NewStore creates a store for the file at path. The format follows the
// file extension.
func NewStore(path string, lvl ConfigLevel, log *slog.Logger) *Store {
	return &Store{
		path:    path,
		level:   lvl,
		entries: make(map[string]*ConfigEntry),
		parser:  &Parser{Format: FormatForPath(path)},
		log:     logger.OrDefault(log),
	}
}

// Load reads and parses the file. A missing file is an empty
// configuration. A file with the wrong shape is skipped with a warning.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := fileops.Exists(s.path)
	if err != nil {
		return NewConfigError("load", CodeNotFoundErr, "", s.path, s.level.String(), err)
	}
	if !exists {
		s.entries = make(map[string]*ConfigEntry)
		return nil
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return NewConfigError("load", CodeNotFoundErr, "", s.path, s.level.String(), err)
	}

	validation := s.parser.Validate(string(content))
	if !validation.Valid {
		s.log.Warn("ignoring invalid configuration file", "path", s.path, "errors", validation.Errors)
		s.entries = make(map[string]*ConfigEntry)
		return nil
	}

	entries, err := s.parser.Parse(string(content), NewFileSource(s.path), s.level)
	if err != nil {
		return NewInvalidFormatError("load", s.path, err)
	}

	s.entries = entries
	s.log.Debug("configuration loaded", "path", s.path, "level", s.level, "keys", len(entries))
	return nil
}

// Save writes the configuration to disk atomically
func (s *Store) Save() error {
	s.mu.RLock()
	content, err := s.parser.Serialize(s.entries)
	s.mu.RUnlock()
	if err != nil {
		return NewInvalidFormatError("save", s.path, err)
	}

	if err := fileops.AtomicWrite(s.path, []byte(content), 0o644); err != nil {
		return NewInvalidFormatError("save", s.path, fmt.Errorf("write failed: %w", err))
	}
	return nil
}

// Get returns a copy of the entry for key, or nil.
func (s *Store) Get(key string) *ConfigEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.entries[key]; ok {
		return entry.Clone()
	}
	return nil
}

// Keys returns the keys set in this store, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Set replaces the value for key
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = NewEntry(key, value, s.level, NewFileSource(s.path))
}

// Unset removes key. It reports whether the key was present.
func (s *Store) Unset(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[key]
	delete(s.entries, key)
	return ok
}

// Path returns the file path for this store
func (s *Store) Path() string {
	return s.path
}

// Level returns the configuration level for this store
func (s *Store) Level() ConfigLevel {
	return s.level
}

// HasKey returns true if the store has a value for key
func (s *Store) HasKey(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[key]
	return ok
}
