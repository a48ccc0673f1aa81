package audit

import (
	"context"
	"log/slog"
)

// SlogAdapter writes audit events to an slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a SlogAdapter that writes to the given logger at
// Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter that logs at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("check", event.Check),
		slog.String("outcome", event.Outcome.String()),
	}

	if event.Permission != "" {
		attrs = append(attrs, slog.String("permission", event.Permission))
	}
	if event.UserID != nil {
		attrs = append(attrs, slog.Int("user", *event.UserID))
	}
	if event.Package != "" {
		attrs = append(attrs,
			slog.String("package", event.Package),
			slog.Int("uid", event.UID),
		)
	}
	if event.Tag != "" {
		attrs = append(attrs, slog.String("tag", event.Tag))
	}
	if event.Message != "" {
		attrs = append(attrs, slog.String("message", event.Message))
	}
	if event.Device != "" {
		attrs = append(attrs, slog.String("device", event.Device))
	}
	if event.Reason != "" {
		attrs = append(attrs, slog.String("reason", event.Reason))
	}

	a.logger.LogAttrs(context.Background(), a.level, "guard", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
