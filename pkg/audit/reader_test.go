package audit

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestAuditFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.alog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test audit file: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, path string, filter Filter) []Event {
	t.Helper()
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	var events []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		events = append(events, event)
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	path := createTestAuditFile(t, []Event{
		{Timestamp: time.Now(), Check: "one"},
		{Timestamp: time.Now(), Check: "two"},
		{Timestamp: time.Now(), Check: "three"},
	})

	events := readAll(t, path, Filter{})
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].Check != "one" || events[2].Check != "three" {
		t.Errorf("events out of order: %q ... %q", events[0].Check, events[2].Check)
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := createTestAuditFile(t, nil)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("Next on empty file = %v, want io.EOF", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.alog")); err == nil {
		t.Error("NewReader succeeded on a missing file")
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sys, other := 0, 10

	path := createTestAuditFile(t, []Event{
		{Timestamp: base, Check: "CheckCallerHasCoarseLocation", Permission: "coarse", Outcome: OutcomeDenied, UserID: &sys},
		{Timestamp: base.Add(time.Second), Check: "CheckCallerHasCoarseLocation", Permission: "coarse", Outcome: OutcomeAllowed, UserID: &sys},
		{Timestamp: base.Add(2 * time.Second), Check: "EnforceDumpPermission", Permission: "dump", Outcome: OutcomeViolation},
		{Timestamp: base.Add(3 * time.Second), Check: "BlockedByLocationOff", Outcome: OutcomeAllowed, UserID: &other},
	})

	denied := OutcomeDenied
	allowed := OutcomeAllowed
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 4},
		{"by check", Filter{Check: "CheckCallerHasCoarseLocation"}, 2},
		{"by permission", Filter{Permission: "dump"}, 1},
		{"by outcome", Filter{Outcome: &denied}, 1},
		{"by outcome allowed", Filter{Outcome: &allowed}, 2},
		{"by user", Filter{UserID: &sys}, 2},
		{"by other user", Filter{UserID: &other}, 1},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{Check: "CheckCallerHasCoarseLocation", Outcome: &allowed}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(readAll(t, path, tt.filter)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}
