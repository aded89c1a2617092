package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a configuration file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension. Anything that
// isn't .yaml or .yml is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parser converts between configuration files and entries.
type Parser struct {
	Format Format
}

// ValidationResult contains validation results
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Parse parses configuration content into a map of entries
func (p *Parser) Parse(content string, source ConfigSource, lvl ConfigLevel) (map[string]*ConfigEntry, error) {
	result := make(map[string]*ConfigEntry)

	if strings.TrimSpace(content) == "" {
		return result, nil
	}

	doc, err := p.decode(content)
	if err != nil {
		return nil, NewInvalidFormatError("parse", source.String(), fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	p.parseSection(doc, result, source, lvl, "")
	return result, nil
}

// Serialize converts configuration entries to the parser's format
func (p *Parser) Serialize(entries map[string]*ConfigEntry) (string, error) {
	doc := NewDocument()

	for key, entry := range entries {
		if err := doc.SetNestedValue(key, entry.Value); err != nil {
			return "", err
		}
	}

	data, err := p.encode(doc)
	if err != nil {
		return "", NewInvalidFormatError("serialize", "", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return data, nil
}

// Validate checks the structure of content: it must decode to an object
// whose leaves are scalars.
func (p *Parser) Validate(content string) ValidationResult {
	if strings.TrimSpace(content) == "" {
		return ValidationResult{Valid: true}
	}

	errors := []string{}

	doc, err := p.decode(content)
	if err != nil {
		errors = append(errors, fmt.Sprintf("Invalid %s: %v", strings.ToUpper(string(p.format())), err))
		return ValidationResult{Valid: false, Errors: errors}
	}

	p.validateSection(doc.data, "", &errors)
	return ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

func (p *Parser) format() Format {
	if p.Format == "" {
		return FormatJSON
	}
	return p.Format
}

func (p *Parser) decode(content string) (*Document, error) {
	var parsed any

	switch p.format() {
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), &parsed); err != nil {
			return nil, err
		}
		parsed = normalizeYAML(parsed)
	default:
		if err := json.Unmarshal([]byte(content), &parsed); err != nil {
			return nil, err
		}
	}

	data, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("configuration must be an object")
	}
	return &Document{data: data}, nil
}

func (p *Parser) encode(doc *Document) (string, error) {
	switch p.format() {
	case FormatYAML:
		data, err := yaml.Marshal(doc.data)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := json.MarshalIndent(doc.data, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	}
}

// parseSection flattens nested sections into dotted keys
func (p *Parser) parseSection(
	doc *Document,
	result map[string]*ConfigEntry,
	source ConfigSource,
	lvl ConfigLevel,
	keyPrefix string,
) {
	_ = doc.Range(func(key string, value any) error {
		fullKey := buildFullKey(keyPrefix, key)

		switch v := value.(type) {
		case map[string]any:
			p.parseSection(&Document{data: v}, result, source, lvl, fullKey)
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				items = append(items, fmt.Sprint(item))
			}
			result[fullKey] = NewEntry(fullKey, strings.Join(items, ","), lvl, source)
		case string:
			result[fullKey] = NewEntry(fullKey, v, lvl, source)
		case nil:
		default:
			result[fullKey] = NewEntry(fullKey, fmt.Sprint(v), lvl, source)
		}
		return nil
	})
}

// buildFullKey builds the full configuration key from prefix and section key
func buildFullKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// validateSection validates a configuration section
func (p *Parser) validateSection(section map[string]any, currentPath string, errors *[]string) {
	for key, value := range section {
		path := buildFullKey(currentPath, key)

		switch v := value.(type) {
		case map[string]any:
			p.validateSection(v, path, errors)
		case []any:
			for _, item := range v {
				switch item.(type) {
				case map[string]any, []any:
					*errors = append(*errors, fmt.Sprintf("Configuration array at '%s' cannot contain objects", path))
				}
			}
		}
	}
}
