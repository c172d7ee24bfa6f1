package app

import (
	"testing"
)

// TestDetermineLogLevel verifies the level precedence rules.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"quiet wins over verbose", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit level wins over verbose", Config{Verbose: true, LogLevel: "error"}, "error"},
		{"invalid explicit level falls back to info", Config{LogLevel: "loud"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineLogLevel(&tt.config); got != tt.want {
				t.Errorf("determineLogLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestValidateLogLevel verifies level validation.
func TestValidateLogLevel(t *testing.T) {
	for _, valid := range []string{"trace", "debug", "info", "warn", "error"} {
		if got := validateLogLevel(valid); got != valid {
			t.Errorf("validateLogLevel(%q) = %q, want %q", valid, got, valid)
		}
	}

	if got := validateLogLevel("nonsense"); got != "info" {
		t.Errorf("validateLogLevel(nonsense) = %q, want info", got)
	}
}

// TestNewLogger verifies loggers are created without panicking for the
// common configurations.
func TestNewLogger(t *testing.T) {
	configs := []*Config{
		{},
		{Verbose: true, LogFormat: "json", LogOutput: "discard"},
		{Quiet: true, LogFormat: "console", LogOutput: "discard"},
	}

	for _, config := range configs {
		logger := NewLogger(config)
		logger.Debug().Msg("logger smoke test")
	}
}
