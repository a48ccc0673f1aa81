package audit

import "time"

// Event is a single guard decision.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the decision was made.
	Timestamp time.Time `cbor:"1,keyasint"`

	// Check names the guard that made the decision, e.g.
	// "CheckCallerHasCoarseLocation".
	Check string `cbor:"2,keyasint"`

	// Permission is the permission that was checked, if any.
	Permission string `cbor:"3,keyasint,omitempty"`

	// Outcome is the decision.
	Outcome Outcome `cbor:"4,keyasint"`

	// UserID is the host user the check applied to, if any.
	UserID *int `cbor:"5,keyasint,omitempty"`

	// Package is the package name at the head of the attribution chain.
	Package string `cbor:"6,keyasint,omitempty"`

	// UID is the uid at the head of the attribution chain.
	UID int `cbor:"7,keyasint,omitempty"`

	// Tag is the caller-supplied diagnostic tag.
	Tag string `cbor:"8,keyasint,omitempty"`

	// Message is the access message passed with data-delivery checks.
	Message string `cbor:"9,keyasint,omitempty"`

	// Device is the loggable address of the device involved, if any.
	Device string `cbor:"10,keyasint,omitempty"`

	// Reason explains a denial.
	Reason string `cbor:"11,keyasint,omitempty"`
}

// Outcome is the result of a guard decision.
type Outcome uint8

const (
	// OutcomeAllowed indicates the check passed.
	OutcomeAllowed Outcome = 0

	// OutcomeDenied indicates the check failed without a security violation.
	OutcomeDenied Outcome = 1

	// OutcomeViolation indicates a security violation was signalled.
	OutcomeViolation Outcome = 2

	// OutcomeUnavailable indicates a required service was missing or not
	// available.
	OutcomeUnavailable Outcome = 3
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeAllowed:
		return "ALLOWED"
	case OutcomeDenied:
		return "DENIED"
	case OutcomeViolation:
		return "VIOLATION"
	case OutcomeUnavailable:
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}

// ParseOutcome parses an outcome name as returned by String.
func ParseOutcome(s string) (Outcome, bool) {
	for _, o := range []Outcome{OutcomeAllowed, OutcomeDenied, OutcomeViolation, OutcomeUnavailable} {
		if o.String() == s {
			return o, true
		}
	}
	return 0, false
}
