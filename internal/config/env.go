// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strconv"

	xglog "github.com/posecare/statusd/internal/log"
)

// ParseString reads a string from an environment variable or returns the
// default. Empty values count as unset.
func ParseString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// ParseInt reads an integer from an environment variable or returns the
// default. Unparseable values are logged and ignored.
func ParseInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		lg := xglog.WithComponent("config")
		lg.Warn().
			Str("key", key).
			Str("value", value).
			Msg("ignoring unparseable integer environment variable")
		return defaultValue
	}
	return parsed
}

// ParseBool reads a boolean from an environment variable or returns the
// default. Accepts the forms strconv.ParseBool accepts.
func ParseBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		lg := xglog.WithComponent("config")
		lg.Warn().
			Str("key", key).
			Str("value", value).
			Msg("ignoring unparseable boolean environment variable")
		return defaultValue
	}
	return parsed
}
