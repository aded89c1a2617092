package main

import (
	"strings"
	"testing"

	"github.com/utkarsh5026/coderoast/pkg/coderoast"
	"github.com/utkarsh5026/coderoast/pkg/level"
)

func TestDemoCommand(t *testing.T) {
	th := NewTestHelper(t)

	stdout, stderr, err := th.Run("demo")
	if err != nil {
		t.Fatalf("demo command failed: %v", err)
	}

	for _, want := range []string{
		"Wrapped Functions", "divide(0) panicked", "forty-two", "logic", "MILD", "BRUTAL",
		"Deactivation", "after Deactivate, active: false", "nobody will roast this", "after Activate, active: true",
		"Error Kinds", "syntax:", "type:", "file:",
		"Demo complete",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in demo narration:\n%s", want, stdout)
		}
	}
	if strings.Count(stderr, "ROAST") != 6 {
		t.Errorf("expected three wrapped failures and three error kinds to be roasted on stderr:\n%s", stderr)
	}
	for _, tag := range []string{"[medium/syntax]", "[medium/type]", "[medium/file]"} {
		if !strings.Contains(stderr, tag) {
			t.Errorf("expected a %s roast on stderr:\n%s", tag, stderr)
		}
	}
	if strings.Contains(stderr, "nobody will roast this") {
		t.Errorf("a failure while deactivated was roasted:\n%s", stderr)
	}
	if !coderoast.IsActive() {
		t.Error("demo left roasting deactivated")
	}
	if got := coderoast.GetRoastLevel(); got != level.Medium {
		t.Errorf("demo left the level at %s", got)
	}
}

func TestDemoCommandNoRoast(t *testing.T) {
	th := NewTestHelper(t)

	stdout, stderr, err := th.Run("--no-roast", "demo")
	if err != nil {
		t.Fatalf("demo command failed: %v", err)
	}
	if !strings.Contains(stdout, "Demo complete") {
		t.Errorf("demo did not finish:\n%s", stdout)
	}
	if strings.Contains(stderr, "ROAST") {
		t.Errorf("expected no roasts with --no-roast:\n%s", stderr)
	}
	if coderoast.IsActive() {
		t.Error("the deactivation step must not switch roasting on for a --no-roast run")
	}
}

func TestDemoCommandStdoutStream(t *testing.T) {
	th := NewTestHelper(t)
	th.Setenv("CODEROAST_OUTPUT_STREAM", "stdout")

	stdout, stderr, err := th.Run("demo")
	if err != nil {
		t.Fatalf("demo command failed: %v", err)
	}
	if !strings.Contains(stdout, "ROAST") {
		t.Errorf("expected roasts on stdout:\n%s", stdout)
	}
	if strings.Contains(stderr, "ROAST") {
		t.Errorf("expected nothing roasted on stderr:\n%s", stderr)
	}
}

func TestDemoCommandDotEnv(t *testing.T) {
	th := NewTestHelper(t)
	th.WriteFile(".env", "CODEROAST_ROAST_ACTIVE=false\n")

	_, stderr, err := th.Run("demo")
	if err != nil {
		t.Fatalf("demo command failed: %v", err)
	}
	if strings.Contains(stderr, "ROAST") {
		t.Errorf("expected .env to deactivate roasting:\n%s", stderr)
	}
}
