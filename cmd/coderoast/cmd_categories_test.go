package main

import (
	"strings"
	"testing"
)

func TestCategoriesCommand(t *testing.T) {
	th := NewTestHelper(t)

	stdout, _, err := th.Run("categories")
	if err != nil {
		t.Fatalf("categories command failed: %v", err)
	}

	for _, want := range []string{"general", "math", "syntax", "nil", "divide_by_zero", "nil_pointer"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in categories output:\n%s", want, stdout)
		}
	}
}

func TestClassifyCommand(t *testing.T) {
	th := NewTestHelper(t)

	stdout, _, err := th.Run("classify", "DIVIDE_BY_ZERO", "teapot")
	if err != nil {
		t.Fatalf("classify command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one line per kind, got %q", stdout)
	}
	if !strings.Contains(lines[0], "divide_by_zero") || !strings.Contains(lines[0], "math") {
		t.Errorf("unexpected mapping line %q", lines[0])
	}
	if strings.Contains(lines[0], "(fallback)") {
		t.Errorf("known kind marked as fallback: %q", lines[0])
	}
	if !strings.Contains(lines[1], "general") || !strings.Contains(lines[1], "(fallback)") {
		t.Errorf("expected teapot to fall back to general, got %q", lines[1])
	}
}

func TestClassifyCommandRequiresKind(t *testing.T) {
	th := NewTestHelper(t)

	if _, _, err := th.Run("classify"); err == nil {
		t.Error("expected classify without arguments to fail")
	}
}
