package config

import (
	"fmt"
	"sort"
	"strings"
)

// Document is the nested structure of a configuration file.
//
// Keys are dotted paths ("roast.level") stored as nested sections, so
//
//	{"roast": {"level": "brutal", "active": "true"}}
//
// holds roast.level and roast.active. The same shape is read from JSON
// and YAML.
type Document struct {
	data map[string]any
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	return &Document{data: make(map[string]any)}
}

// Range iterates over the top-level sections in key order. The callback
// can return an error to stop early.
func (d *Document) Range(fn func(key string, value any) error) error {
	keys := make([]string, 0, len(d.data))
	for key := range d.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := fn(key, d.data[key]); err != nil {
			return err
		}
	}
	return nil
}

// SetNestedValue sets keyPath to value, creating the sections on the way.
// A key already holding a section is left alone.
func (d *Document) SetNestedValue(keyPath, value string) error {
	if strings.TrimSpace(keyPath) == "" {
		return NewInvalidValueError(keyPath, fmt.Errorf("empty key path"))
	}

	segments := strings.Split(keyPath, ".")
	finalKey := segments[len(segments)-1]
	target := d.section(segments[:len(segments)-1])

	if _, isSection := target[finalKey].(map[string]any); isSection {
		return nil
	}
	target[finalKey] = value
	return nil
}

// section walks path, replacing anything that isn't a section with an
// empty one.
func (d *Document) section(path []string) map[string]any {
	current := d.data
	for _, segment := range path {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	return current
}

// normalizeYAML converts the map[any]any values a YAML decoder can
// produce for non-string keys into map[string]any.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}
