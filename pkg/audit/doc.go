// Package audit records the decisions made by the Bluetooth permission and
// location guards.
//
// It is separate from operational logging (slog): the audit trail is a
// machine-readable record of every check, suitable for answering "why was
// this scan refused" after the fact.
//
// # Basic Usage
//
// Guards are configured with a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Audit = audit.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.Audit, _ = audit.NewFileLogger("/data/misc/bluetooth/guard.alog")
//
//	// Both: use MultiLogger
//	cfg.Audit = audit.NewMultiLogger(slogAdapter, fileLogger)
//
// # File Format
//
// Audit files are a stream of CBOR-encoded events with integer keys. Use
// Reader to iterate them, optionally with a Filter. Events never carry a
// full device address, only the loggable form.
package audit
