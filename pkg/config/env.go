package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix starts every environment variable read into EnvironmentLevel.
const EnvPrefix = "CODEROAST_"

// EnvName returns the environment variable for key:
// "roast.level" becomes "CODEROAST_ROAST_LEVEL".
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// keyFromEnv is the inverse of EnvName.
func keyFromEnv(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, EnvPrefix)
	if !ok || rest == "" {
		return "", false
	}
	return strings.ToLower(strings.ReplaceAll(rest, "_", ".")), true
}

// loadEnvironment collects CODEROAST_* values from envFile (if it exists)
// and then from environ. The real environment wins over the file.
func loadEnvironment(envFile string, environ []string) (map[string]string, error) {
	values := make(map[string]string)

	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, NewInvalidFormatError("load_env", envFile, err)
		}
		for name, value := range fileValues {
			if key, ok := keyFromEnv(name); ok {
				values[key] = value
			}
		}
	}

	for _, kv := range environ {
		name, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		if key, ok := keyFromEnv(name); ok {
			values[key] = value
		}
	}

	return values, nil
}
