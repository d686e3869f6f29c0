package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level, format string
		wantLevel     zapcore.Level
		wantErr       bool
	}{
		{"debug", "json", zapcore.DebugLevel, false},
		{"WARN", "console", zapcore.WarnLevel, false},
		{"", "", zapcore.InfoLevel, false},
		{"loud", "json", zapcore.InfoLevel, false},
		{"info", "xml", 0, true},
	}
	for _, tt := range tests {
		logger, err := New(tt.level, tt.format)
		if (err != nil) != tt.wantErr {
			t.Fatalf("New(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
		}
		if tt.wantErr {
			continue
		}
		if !logger.Core().Enabled(tt.wantLevel) {
			t.Errorf("New(%q): level %s not enabled", tt.level, tt.wantLevel)
		}
		if tt.wantLevel > zapcore.DebugLevel && logger.Core().Enabled(tt.wantLevel-1) {
			t.Errorf("New(%q): level below %s should be disabled", tt.level, tt.wantLevel)
		}
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Error("OrNop(nil) returned nil")
	}
}
