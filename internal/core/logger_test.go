package core

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLoggerTo(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		wantOutput bool
	}{
		{"debug level shows info", "debug", true},
		{"info level shows info", "info", true},
		{"warn level hides info", "warn", false},
		{"error level hides info", "error", false},
		{"default level shows info", "", true},
		{"unknown level shows info", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerTo(&buf, tt.level)

			logger.Info("test message", "key", "value")

			output := buf.String()
			if tt.wantOutput && output == "" {
				t.Fatal("Expected log output, got none")
			}
			if !tt.wantOutput && output != "" {
				t.Fatalf("Expected no output at level %q, got %s", tt.level, output)
			}

			if output != "" {
				var entry map[string]interface{}
				if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &entry); err != nil {
					t.Fatalf("Log output is not JSON: %v", err)
				}
				if entry["msg"] != "test message" {
					t.Errorf("msg = %v, want test message", entry["msg"])
				}
				if entry["key"] != "value" {
					t.Errorf("key = %v, want value", entry["key"])
				}
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "debug")

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 log lines, got %d", len(lines))
	}
}
