package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"verbose", zerolog.WarnLevel},
	}

	for _, tc := range tests {
		if got := ParseLogLevel(tc.in); got != tc.expected {
			t.Errorf("ParseLogLevel(%q) = %s, expected %s", tc.in, got, tc.expected)
		}
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf).With("run_id", "abc")

	log.Info("Entries appended", "count", 2, "error", errors.New("boom"))

	var event map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if event["message"] != "Entries appended" {
		t.Errorf("Unexpected message %v", event["message"])
	}
	if event["run_id"] != "abc" {
		t.Errorf("Expected run_id field, got %v", event["run_id"])
	}
	if event["count"] != float64(2) {
		t.Errorf("Expected count 2, got %v", event["count"])
	}
	if event["error"] != "boom" {
		t.Errorf("Expected error boom, got %v", event["error"])
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	if log == nil {
		t.Fatal("Logger should be created successfully")
	}
	log.With("k", "v").Info("discarded")
}
