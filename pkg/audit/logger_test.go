package audit

import (
	"testing"
	"time"
)

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
	logger.Log(Event{Timestamp: time.Now(), Check: "EnforceDumpPermission", Outcome: OutcomeViolation})
}

func TestLoggerInterfaceSatisfaction(t *testing.T) {
	var _ Logger = NoopLogger{}
	var _ Logger = &NoopLogger{}
	var _ Logger = NewRecorder()
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{OutcomeAllowed, "ALLOWED"},
		{OutcomeDenied, "DENIED"},
		{OutcomeViolation, "VIOLATION"},
		{OutcomeUnavailable, "UNAVAILABLE"},
		{Outcome(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
		if tt.want == "UNKNOWN" {
			continue
		}
		parsed, ok := ParseOutcome(tt.want)
		if !ok || parsed != tt.o {
			t.Errorf("ParseOutcome(%q) = %v, %v", tt.want, parsed, ok)
		}
	}

	if _, ok := ParseOutcome("bogus"); ok {
		t.Error("ParseOutcome accepted an unknown name")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	if _, ok := r.Last(); ok {
		t.Fatal("Last on empty recorder reported an event")
	}

	r.Log(Event{Check: "a"})
	r.Log(Event{Check: "b"})

	events := r.Events()
	if len(events) != 2 || events[0].Check != "a" || events[1].Check != "b" {
		t.Fatalf("Events() = %+v", events)
	}

	// Events returns a copy
	events[0].Check = "mutated"
	if r.Events()[0].Check != "a" {
		t.Error("Events() exposed internal storage")
	}

	last, ok := r.Last()
	if !ok || last.Check != "b" {
		t.Errorf("Last() = %+v, %v", last, ok)
	}

	r.Reset()
	if len(r.Events()) != 0 {
		t.Error("Reset did not clear events")
	}
}
