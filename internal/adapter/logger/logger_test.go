package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerAdapter_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "production")

	l.Debug("hidden", nil)
	l.Info("Bike created successfully", map[string]interface{}{"bike_id": "1", "items_count": 22})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug suppressed): %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if entry["msg"] != "Bike created successfully" || entry["bike_id"] != "1" || entry["items_count"] != float64(22) {
		t.Fatalf("entry = %v", entry)
	}
}

func TestLoggerAdapter_DevelopmentWritesText(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "development")

	l.Debug("Loaded default fleet", map[string]interface{}{"bikes_count": 2})
	l.Error("Failed to save snapshot", map[string]interface{}{"error": "disk full"})

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "bikes_count=2", "level=ERROR", `error="disk full"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}
