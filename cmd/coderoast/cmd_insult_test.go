package main

import (
	"strings"
	"testing"

	"github.com/utkarsh5026/coderoast/pkg/coderoast"
	"github.com/utkarsh5026/coderoast/pkg/insults"
	"github.com/utkarsh5026/coderoast/pkg/level"
)

func TestInsultCommand(t *testing.T) {
	th := NewTestHelper(t)

	stdout, _, err := th.Run("insult")
	if err != nil {
		t.Fatalf("insult command failed: %v", err)
	}
	if !strings.Contains(stdout, "[medium]") {
		t.Errorf("expected a medium insult, got %q", stdout)
	}
}

func TestInsultCommandWithLevel(t *testing.T) {
	th := NewTestHelper(t)

	stdout, _, err := th.Run("insult", "--level", "brutal", "-n", "3")
	if err != nil {
		t.Fatalf("insult command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 insults, got %d: %q", len(lines), stdout)
	}
	for _, line := range lines {
		if !strings.Contains(line, "[brutal]") {
			t.Errorf("expected a brutal insult, got %q", line)
		}
	}

	if got := coderoast.GetRoastLevel(); got != level.Medium {
		t.Errorf("--level leaked into the engine: level is %s", got)
	}
}

func TestInsultCommandRoastLevelFlag(t *testing.T) {
	th := NewTestHelper(t)

	stdout, _, err := th.Run("--roast-level", "mild", "insult")
	if err != nil {
		t.Fatalf("insult command failed: %v", err)
	}
	if !strings.Contains(stdout, "[mild]") {
		t.Errorf("expected a mild insult, got %q", stdout)
	}
}

func TestInsultCommandByCategory(t *testing.T) {
	th := NewTestHelper(t)

	stdout, _, err := th.Run("insult", "--category", "syntax")
	if err != nil {
		t.Fatalf("insult command failed: %v", err)
	}
	if !strings.Contains(stdout, "[syntax]") {
		t.Errorf("expected a syntax insult, got %q", stdout)
	}

	_, _, err = th.Run("insult", "--category", "nonexistent")
	if !insults.IsUnknownCategory(err) {
		t.Errorf("expected unknown category error, got %v", err)
	}
}

func TestInsultCommandByError(t *testing.T) {
	th := NewTestHelper(t)

	stdout, _, err := th.Run("insult", "--error", "DIVIDE_BY_ZERO")
	if err != nil {
		t.Fatalf("insult command failed: %v", err)
	}
	if !strings.Contains(stdout, "[medium/math]") {
		t.Errorf("expected a medium math insult, got %q", stdout)
	}

	stdout, _, err = th.Run("insult", "--error", "flux_capacitor")
	if err != nil {
		t.Fatalf("insult command failed for unknown kind: %v", err)
	}
	if !strings.Contains(stdout, "[medium/general]") {
		t.Errorf("expected unknown kinds to fall back to general, got %q", stdout)
	}
}

func TestInsultCommandInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid level", []string{"insult", "--level", "nuclear"}},
		{"zero count", []string{"insult", "-n", "0"}},
		{"category and error", []string{"insult", "--category", "math", "--error", "timeout"}},
		{"invalid roast level flag", []string{"--roast-level", "4", "insult"}},
		{"positional args", []string{"insult", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewTestHelper(t)
			if _, _, err := th.Run(tt.args...); err == nil {
				t.Errorf("expected %v to fail", tt.args)
			}
		})
	}
}

func TestInsultCommandInvalidLevelError(t *testing.T) {
	th := NewTestHelper(t)

	_, _, err := th.Run("insult", "--level", "nuclear")
	if !level.IsInvalidLevel(err) {
		t.Errorf("expected an invalid level error, got %v", err)
	}
}
