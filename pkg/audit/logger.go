package audit

// Logger is the interface implemented by audit event sinks.
// Pass nil or NoopLogger to disable auditing.
type Logger interface {
	// Log records a guard decision. Implementations must be thread-safe.
	Log(event Event)
}

// NoopLogger discards all events.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
