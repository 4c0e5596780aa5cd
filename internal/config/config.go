// Package config provides the functional options shared by the trainer and
// CLI layers: a validated Settings built up by applying Option values in
// order, so invalid configuration fails fast with a typed error instead of
// surfacing as a confusing panic deep in training.
package config

import (
	"log/slog"

	"github.com/agentstation/bpec"
)

// Settings holds the options a caller can tune on a training run. The zero
// value is never handed to callers directly; use Apply to get one seeded
// with defaults.
type Settings struct {
	Logger            *slog.Logger
	ProgressInterval int
}

// Option configures a Settings value. Options are applied in order and may
// fail validation, each reporting which field rejected its value.
type Option func(*Settings) error

// Apply builds a Settings from defaults, applying opts in order.
func Apply(opts ...Option) (*Settings, error) {
	s := &Settings{
		Logger:           slog.Default(),
		ProgressInterval: 1000,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WithLogger overrides the logger used for trainer progress output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Settings) error {
		if l == nil {
			return &bpec.ConfigError{Field: "logger", Value: nil}
		}
		s.Logger = l
		return nil
	}
}

// WithProgressInterval sets how many accepted merges elapse between
// progress log records. A value of 0 disables progress logging.
func WithProgressInterval(n int) Option {
	return func(s *Settings) error {
		if n < 0 {
			return &bpec.ConfigError{Field: "progress_interval", Value: n}
		}
		s.ProgressInterval = n
		return nil
	}
}
