package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zap.InfoLevel, false},
		{"INFO", zap.InfoLevel, false},
		{"debug", zap.DebugLevel, false},
		{"DEVELOPMENT", zap.DebugLevel, false},
		{"warn", zap.WarnLevel, false},
		{"error", zap.ErrorLevel, false},
		{"loud", zap.InfoLevel, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("ParseLevel(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestInit_ReplacesGlobals(t *testing.T) {
	logger, err := Init("warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer zap.ReplaceGlobals(zap.NewNop())
	if zap.L() != logger {
		t.Fatalf("expected global logger to be replaced")
	}
	if logger.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("info must be disabled at warn level")
	}
}
