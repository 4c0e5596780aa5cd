package config

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/agentstation/bpec"
)

func TestApplyDefaults(t *testing.T) {
	s, err := Apply()
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.Logger == nil {
		t.Fatal("Logger should default to a non-nil logger")
	}
	if s.ProgressInterval != 1000 {
		t.Fatalf("ProgressInterval = %d, want 1000", s.ProgressInterval)
	}
}

func TestWithLoggerRejectsNil(t *testing.T) {
	_, err := Apply(WithLogger(nil))
	var cfgErr *bpec.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *bpec.ConfigError", err)
	}
}

func TestWithProgressIntervalRejectsNegative(t *testing.T) {
	_, err := Apply(WithProgressInterval(-1))
	var cfgErr *bpec.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *bpec.ConfigError", err)
	}
}

func TestWithLoggerOverride(t *testing.T) {
	custom := slog.Default()
	s, err := Apply(WithLogger(custom))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.Logger != custom {
		t.Fatal("Logger override did not take effect")
	}
}
