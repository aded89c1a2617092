package config

import "github.com/utkarsh5026/coderoast/pkg/level"

// Configuration keys
const (
	KeyRoastLevel     = "roast.level"
	KeyRoastActive    = "roast.active"
	KeyRoastHook      = "roast.hook"
	KeyOutputColor    = "output.color"
	KeyOutputStream   = "output.stream"
	KeyOutputSnippet  = "output.snippet"
	KeyOutputCallSite = "output.callsite"
)

// Output streams
const (
	StreamStderr = "stderr"
	StreamStdout = "stdout"
)

// Defaults returns the builtin value of every known key.
func Defaults() map[string]string {
	return map[string]string{
		KeyRoastLevel:     level.Default.String(),
		KeyRoastActive:    "true",
		KeyRoastHook:      "true",
		KeyOutputColor:    "auto",
		KeyOutputStream:   StreamStderr,
		KeyOutputSnippet:  "false",
		KeyOutputCallSite: "true",
	}
}
