package audit

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func TestSlogAdapterLogsEvent(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	user := 0
	adapter.Log(Event{
		Timestamp:  time.Now(),
		Check:      "CheckAdvertisePermissionForDataDelivery",
		Permission: "android.permission.BLUETOOTH_ADVERTISE",
		Outcome:    OutcomeViolation,
		UserID:     &user,
		Package:    "com.example.beacon",
		UID:        10077,
		Message:    "start advertising",
		Device:     "xx:xx:xx:xx:EE:FF",
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	want := map[string]any{
		"msg":        "guard",
		"level":      "DEBUG",
		"check":      "CheckAdvertisePermissionForDataDelivery",
		"outcome":    "VIOLATION",
		"permission": "android.permission.BLUETOOTH_ADVERTISE",
		"user":       float64(0),
		"package":    "com.example.beacon",
		"uid":        float64(10077),
		"message":    "start advertising",
		"device":     "xx:xx:xx:xx:EE:FF",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["reason"]; ok {
		t.Error("empty reason was logged")
	}
}

func TestSlogAdapterWithLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{Check: "hidden"})
	if buf.Len() != 0 {
		t.Fatalf("debug event passed an info handler: %s", buf.String())
	}

	adapter.WithLevel(slog.LevelWarn).Log(Event{Check: "shown"})
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if entry["level"] != "WARN" || entry["check"] != "shown" {
		t.Errorf("entry = %v", entry)
	}
}
