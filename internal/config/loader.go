// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvListen           = "STATUSD_LISTEN"
	EnvLogLevel         = "STATUSD_LOG_LEVEL"
	EnvLogService       = "STATUSD_LOG_SERVICE"
	EnvRateLimitEnabled = "STATUSD_RATE_LIMIT_ENABLED"
	EnvRateLimitRPM     = "STATUSD_RATE_LIMIT_RPM"
)

// Loader loads configuration with the precedence ENV > file > defaults.
type Loader struct {
	path    string // optional YAML file; empty skips the file layer
	version string
}

// NewLoader returns a loader for the given optional config file path.
func NewLoader(path, version string) *Loader {
	return &Loader{path: path, version: version}
}

// Load builds the effective configuration and validates it.
func (l *Loader) Load() (Config, error) {
	cfg := Defaults()

	if l.path != "" {
		if err := mergeFile(&cfg, l.path); err != nil {
			return Config{}, err
		}
	}
	mergeEnv(&cfg)
	cfg.Version = l.version

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied configuration
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	// Strict decoding so a typo in a key fails loudly instead of silently
	// keeping the default.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func mergeEnv(cfg *Config) {
	cfg.Listen = ParseString(EnvListen, cfg.Listen)
	cfg.LogLevel = ParseString(EnvLogLevel, cfg.LogLevel)
	cfg.LogService = ParseString(EnvLogService, cfg.LogService)
	cfg.RateLimitEnabled = ParseBool(EnvRateLimitEnabled, cfg.RateLimitEnabled)
	cfg.RateLimitRPM = ParseInt(EnvRateLimitRPM, cfg.RateLimitRPM)
}
