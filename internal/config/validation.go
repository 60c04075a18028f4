// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"net"
	"sort"

	"github.com/posecare/statusd/internal/status"
	"github.com/rs/zerolog"
)

var (
	// ErrInvalidListen is returned when the listen address cannot be parsed.
	ErrInvalidListen = errors.New("invalid listen address")

	// ErrInvalidLogLevel is returned when the log level is not a zerolog level.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidRateLimit is returned when the rate-limit budget is not positive.
	ErrInvalidRateLimit = errors.New("rate limit must be positive")

	// ErrUnknownMessageKey is returned when a message override names a status
	// outside the canonical vocabulary.
	ErrUnknownMessageKey = errors.New("message override for unknown status")
)

// Validate checks cfg for consistency. It is called on every load and reload;
// a failing reload keeps the previous configuration.
func Validate(cfg Config) error {
	if _, _, err := net.SplitHostPort(cfg.Listen); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidListen, cfg.Listen, err)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}
	if cfg.RateLimitEnabled && cfg.RateLimitRPM <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRateLimit, cfg.RateLimitRPM)
	}

	var unknown []string
	for key := range cfg.Messages {
		if !status.Status(key).Known() {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %v", ErrUnknownMessageKey, unknown)
	}
	return nil
}

// MessageOverrides converts the raw override map into the typed catalog
// consumed by the display projector. Validate guarantees the keys are
// canonical.
func (c Config) MessageOverrides() status.Messages {
	if len(c.Messages) == 0 {
		return nil
	}
	m := make(status.Messages, len(c.Messages))
	for key, text := range c.Messages {
		m[status.Status(key)] = text
	}
	return m
}
