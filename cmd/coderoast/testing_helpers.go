package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/utkarsh5026/coderoast/pkg/coderoast"
	"github.com/utkarsh5026/coderoast/pkg/common/logger"
)

// TestHelper runs CLI commands against an isolated project directory,
// user file and environment.
type TestHelper struct {
	t       *testing.T
	tempDir string

	// Environ is the environment the commands see.
	Environ []string
}

// NewTestHelper creates a new test helper with automatic cleanup
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	prevDefault := coderoast.Default()
	prevLogger := logger.Default
	t.Cleanup(func() {
		coderoast.SetDefault(prevDefault)
		logger.Default = prevLogger
	})

	return &TestHelper{
		t:       t,
		tempDir: t.TempDir(),
	}
}

// TempDir returns the project directory
func (th *TestHelper) TempDir() string {
	return th.tempDir
}

// UserConfigPath returns the user configuration file the commands use.
func (th *TestHelper) UserConfigPath() string {
	return filepath.Join(th.tempDir, "home", "config.json")
}

// Setenv adds a variable to the environment the commands see.
func (th *TestHelper) Setenv(name, value string) {
	th.Environ = append(th.Environ, name+"="+value)
}

// WriteFile creates a test file with content
func (th *TestHelper) WriteFile(name, content string) string {
	th.t.Helper()

	filePath := filepath.Join(th.tempDir, name)

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		th.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		th.t.Fatalf("failed to write file %s: %v", filePath, err)
	}

	return filePath
}

// Run executes the root command with args and returns what it wrote.
func (th *TestHelper) Run(args ...string) (stdout, stderr string, err error) {
	th.t.Helper()

	if args == nil {
		args = []string{}
	}

	environ := th.Environ
	a := &app{
		projectDir: th.tempDir,
		userPath:   th.UserConfigPath(),
		environ:    func() []string { return environ },
	}

	var outBuf, errBuf bytes.Buffer
	root := newRootCmd(a)
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}
