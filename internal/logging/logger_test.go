package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
		ok   bool
	}{
		{"", zapcore.InfoLevel, true},
		{"info", zapcore.InfoLevel, true},
		{"DEBUG", zapcore.DebugLevel, true},
		{" warn ", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"dpanic", zapcore.DPanicLevel, true},
		{"verbose", zapcore.InfoLevel, false},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseLevel(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	logger, err := New(LevelDebug)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level enabled")
	}

	if _, err := New("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
