package metrics

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSnapshot(t *testing.T) {
	before := Snapshot()
	TracksProcessed.Inc(2)
	SpeedsClamped.Inc(1)
	BytesRead.Mark(1024)
	after := Snapshot()

	if d := after["tracks/processed"] - before["tracks/processed"]; d != 2 {
		t.Errorf("expected 2 processed, got %d", d)
	}
	if d := after["speeds/clamped"] - before["speeds/clamped"]; d != 1 {
		t.Errorf("expected 1 clamped, got %d", d)
	}
	if d := after["bytes/read"] - before["bytes/read"]; d != 1024 {
		t.Errorf("expected 1024 bytes, got %d", d)
	}
	if _, ok := after["waypoints/skipped"]; !ok {
		t.Error("expected every counter in the snapshot")
	}
}

func TestLog(t *testing.T) {
	buf := &bytes.Buffer{}
	Log(slog.New(slog.NewTextHandler(buf, nil)))
	if !strings.Contains(buf.String(), "tracks/processed=") {
		t.Errorf("expected counters in log line, got %q", buf.String())
	}
}
