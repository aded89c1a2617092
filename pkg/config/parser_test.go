package config

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{".coderoast.json", FormatJSON},
		{".coderoast.yaml", FormatYAML},
		{"/etc/CONFIG.YML", FormatYAML},
		{"config", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatForPath(tt.path); got != tt.want {
				t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name       string
		format     Format
		content    string
		wantValues map[string]string
		wantErr    bool
	}{
		{
			name:       "empty content",
			format:     FormatJSON,
			content:    "",
			wantValues: map[string]string{},
		},
		{
			name:   "json sections",
			format: FormatJSON,
			content: `{
				"roast": {
					"level": "brutal",
					"active": false
				},
				"output": {"stream": "stdout"}
			}`,
			wantValues: map[string]string{
				"roast.level":   "brutal",
				"roast.active":  "false",
				"output.stream": "stdout",
			},
		},
		{
			name:   "yaml sections",
			format: FormatYAML,
			content: `
roast:
  level: mild
  hook: true
output:
  snippet: yes
`,
			wantValues: map[string]string{
				"roast.level":    "mild",
				"roast.hook":     "true",
				"output.snippet": "yes",
			},
		},
		{
			name:       "array values are joined",
			format:     FormatJSON,
			content:    `{"output": {"tags": ["a", "b", 3]}}`,
			wantValues: map[string]string{"output.tags": "a,b,3"},
		},
		{
			name:    "invalid JSON",
			format:  FormatJSON,
			content: `{invalid json}`,
			wantErr: true,
		},
		{
			name:    "invalid YAML",
			format:  FormatYAML,
			content: "roast: [unclosed",
			wantErr: true,
		},
		{
			name:    "non-object root",
			format:  FormatJSON,
			content: `["array"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &Parser{Format: tt.format}
			result, err := parser.Parse(tt.content, "test", UserLevel)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsInvalidFormat(err) {
					t.Errorf("Parse() error = %v, want an invalid format error", err)
				}
				return
			}

			if len(result) != len(tt.wantValues) {
				t.Errorf("Parse() returned %d keys, want %d", len(result), len(tt.wantValues))
			}
			for key, want := range tt.wantValues {
				entry, ok := result[key]
				if !ok {
					t.Errorf("Parse() missing key %q", key)
					continue
				}
				if entry.Value != want {
					t.Errorf("Parse() key %q = %q, want %q", key, entry.Value, want)
				}
				if entry.Level != UserLevel || entry.Source != "test" {
					t.Errorf("Parse() key %q has level %v source %q", key, entry.Level, entry.Source)
				}
			}
		})
	}
}

func TestParser_Serialize(t *testing.T) {
	entries := map[string]*ConfigEntry{
		KeyRoastLevel:   NewEntry(KeyRoastLevel, "brutal", UserLevel, "test"),
		KeyOutputStream: NewEntry(KeyOutputStream, "stdout", UserLevel, "test"),
	}

	t.Run("json", func(t *testing.T) {
		out, err := (&Parser{Format: FormatJSON}).Serialize(entries)
		if err != nil {
			t.Fatalf("Serialize() error = %v", err)
		}

		var parsed map[string]map[string]string
		if err := json.Unmarshal([]byte(out), &parsed); err != nil {
			t.Fatalf("Serialize() produced invalid JSON: %v", err)
		}
		if parsed["roast"]["level"] != "brutal" || parsed["output"]["stream"] != "stdout" {
			t.Errorf("Serialize() = %s", out)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := (&Parser{Format: FormatYAML}).Serialize(entries)
		if err != nil {
			t.Fatalf("Serialize() error = %v", err)
		}

		var parsed map[string]map[string]string
		if err := yaml.Unmarshal([]byte(out), &parsed); err != nil {
			t.Fatalf("Serialize() produced invalid YAML: %v", err)
		}
		if parsed["roast"]["level"] != "brutal" {
			t.Errorf("Serialize() = %s", out)
		}
	})

	t.Run("empty", func(t *testing.T) {
		out, err := (&Parser{}).Serialize(map[string]*ConfigEntry{})
		if err != nil {
			t.Fatalf("Serialize() error = %v", err)
		}
		if strings.TrimSpace(out) != "{}" {
			t.Errorf("Serialize() = %q, want {}", out)
		}
	})
}

func TestParser_Validate(t *testing.T) {
	tests := []struct {
		name      string
		format    Format
		content   string
		wantValid bool
	}{
		{"valid json", FormatJSON, `{"roast": {"level": "mild"}}`, true},
		{"valid yaml", FormatYAML, "roast:\n  level: mild\n", true},
		{"empty", FormatJSON, "   ", true},
		{"invalid JSON syntax", FormatJSON, `{invalid}`, false},
		{"non-object root", FormatJSON, `["array"]`, false},
		{"array with objects", FormatJSON, `{"roast": {"level": [{"key": "value"}]}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := (&Parser{Format: tt.format}).Validate(tt.content)
			if result.Valid != tt.wantValid {
				t.Errorf("Validate() valid = %v, want %v. Errors: %v", result.Valid, tt.wantValid, result.Errors)
			}
		})
	}
}

func TestParser_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			parser := &Parser{Format: format}
			original := map[string]*ConfigEntry{
				KeyRoastLevel:     NewEntry(KeyRoastLevel, "medium", ProjectLevel, "test"),
				KeyRoastActive:    NewEntry(KeyRoastActive, "false", ProjectLevel, "test"),
				KeyOutputCallSite: NewEntry(KeyOutputCallSite, "true", ProjectLevel, "test"),
			}

			serialized, err := parser.Serialize(original)
			if err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}
			parsed, err := parser.Parse(serialized, "test", ProjectLevel)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			for key, want := range original {
				got, ok := parsed[key]
				if !ok {
					t.Errorf("round trip lost key %q", key)
					continue
				}
				if got.Value != want.Value {
					t.Errorf("round trip key %q = %q, want %q", key, got.Value, want.Value)
				}
			}
		})
	}
}

func TestDocument_SetNestedValue(t *testing.T) {
	doc := NewDocument()

	if err := doc.SetNestedValue("roast.level", "mild"); err != nil {
		t.Fatalf("SetNestedValue() error = %v", err)
	}
	if err := doc.SetNestedValue("roast", "flat"); err != nil {
		t.Fatalf("SetNestedValue() error = %v", err)
	}
	if err := doc.SetNestedValue("", "x"); !IsInvalidValue(err) {
		t.Errorf("SetNestedValue(\"\") error = %v, want invalid value", err)
	}

	section, ok := doc.data["roast"].(map[string]any)
	if !ok {
		t.Fatalf("roast was overwritten by a scalar: %#v", doc.data["roast"])
	}
	if section["level"] != "mild" {
		t.Errorf("roast.level = %v, want mild", section["level"])
	}
}
