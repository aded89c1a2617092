package config

// ConfigLevel is where a configuration entry came from, ordered by
// precedence (highest first).
type ConfigLevel int

const (
	// CommandLineLevel holds values set by CLI flags for this run only.
	CommandLineLevel ConfigLevel = iota

	// EnvironmentLevel holds CODEROAST_* variables, from the process
	// environment or a .env file.
	EnvironmentLevel

	// ProjectLevel is ./.coderoast.json (or .coderoast.yaml).
	ProjectLevel

	// UserLevel is ~/.config/coderoast/config.json.
	UserLevel

	// BuiltinLevel holds the hardcoded defaults (lowest precedence).
	BuiltinLevel
)

// String returns the string representation of the configuration level
func (l ConfigLevel) String() string {
	switch l {
	case CommandLineLevel:
		return "command-line"
	case EnvironmentLevel:
		return "environment"
	case ProjectLevel:
		return "project"
	case UserLevel:
		return "user"
	case BuiltinLevel:
		return "builtin"
	default:
		return "unknown"
	}
}

// IsValid returns true if the configuration level is valid
func (l ConfigLevel) IsValid() bool {
	return l >= CommandLineLevel && l <= BuiltinLevel
}

// CanWrite returns true for the levels backed by a file.
func (l ConfigLevel) CanWrite() bool {
	return l == ProjectLevel || l == UserLevel
}

// ParseLevel converts a string to a ConfigLevel
func ParseLevel(s string) (ConfigLevel, error) {
	switch s {
	case "command-line":
		return CommandLineLevel, nil
	case "environment", "env":
		return EnvironmentLevel, nil
	case "project":
		return ProjectLevel, nil
	case "user":
		return UserLevel, nil
	case "builtin":
		return BuiltinLevel, nil
	default:
		return 0, NewConfigError("parse", CodeInvalidLevelErr, "", "", s, ErrInvalidLevel)
	}
}
