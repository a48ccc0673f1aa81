package guard

import (
	"errors"

	"github.com/mash-protocol/bt-go/pkg/host"
)

// ErrSecurityViolation is matched by every security violation a guard
// returns.
var ErrSecurityViolation = host.ErrSecurityViolation

// SecurityError reports that the caller lacks a permission the operation
// requires.
type SecurityError = host.SecurityError

// IsSecurityViolation reports whether err is or wraps a security violation.
func IsSecurityViolation(err error) bool {
	return errors.Is(err, ErrSecurityViolation)
}

// Probe collapses a (result, error) pair into a plain answer. Any error,
// including a security violation, counts as a negative answer.
func Probe(ok bool, err error) bool {
	return err == nil && ok
}
