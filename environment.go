package beacon

import (
	"os"
	"strings"
)

// EnvVarOrBool gets the environment variable for the provided key and
// returns whether it matches "true" or "false" (after lower casing it)
// or the default value.
func EnvVarOrBool(key string, def bool) bool {
	val := os.Getenv(key)
	if strings.ToLower(val) == "true" {
		return true
	}

	if strings.ToLower(val) == "false" {
		return false
	}

	return def
}

// EnvVarOrLevel gets the environment variable for the provided key,
// parses it into a [Level],
// or returns the provided default [Level] if the value is not a known level name.
func EnvVarOrLevel(key string, def Level) Level {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	level, err := ParseLevel(val)
	if err != nil {
		return def
	}

	return level
}

// envVarOrString gets the environment variable for the provided key
// or the provided default string.
func envVarOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
