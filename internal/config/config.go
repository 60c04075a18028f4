// SPDX-License-Identifier: MIT

// Package config loads and validates the daemon configuration with the
// precedence ENV > file > defaults, and supports hot reloading of the
// runtime-adjustable subset.
package config

import "time"

// Config is the effective daemon configuration.
type Config struct {
	// Listen is the HTTP listen address. Boot-only; not hot-reloadable.
	Listen string `yaml:"listen"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`

	// LogService is the service name attached to every log entry.
	LogService string `yaml:"log_service"`

	// RateLimitEnabled toggles the API rate limiter.
	RateLimitEnabled bool `yaml:"rate_limit_enabled"`

	// RateLimitRPM is the per-IP request budget per minute.
	RateLimitRPM int `yaml:"rate_limit_rpm"`

	// Messages overrides user-facing status text per canonical status.
	Messages map[string]string `yaml:"messages"`

	// Version is injected by the binary, never read from file or env.
	Version string `yaml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Listen:           ":8080",
		LogLevel:         "info",
		LogService:       "statusd",
		RateLimitEnabled: true,
		RateLimitRPM:     600,
	}
}

// RateLimitWindow is the window the RPM budget applies to.
const RateLimitWindow = time.Minute
