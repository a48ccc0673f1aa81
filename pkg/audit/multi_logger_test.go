package audit

import (
	"testing"
	"time"
)

func TestMultiLoggerCallsAll(t *testing.T) {
	r1, r2, r3 := NewRecorder(), NewRecorder(), NewRecorder()
	multi := NewMultiLogger(r1, r2, r3)

	multi.Log(Event{Timestamp: time.Now(), Check: "BlockedByLocationOff"})

	for i, r := range []*Recorder{r1, r2, r3} {
		events := r.Events()
		if len(events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(events))
			continue
		}
		if events[0].Check != "BlockedByLocationOff" {
			t.Errorf("logger %d: Check = %q", i, events[0].Check)
		}
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	r := NewRecorder()
	multi := NewMultiLogger(nil, r, nil)
	multi.Log(Event{Check: "x"})

	if len(r.Events()) != 1 {
		t.Errorf("got %d events, want 1", len(r.Events()))
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	NewMultiLogger().Log(Event{Check: "x"})
}
