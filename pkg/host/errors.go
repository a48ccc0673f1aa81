package host

import "errors"

// ErrSecurityViolation is matched by every *SecurityError.
var ErrSecurityViolation = errors.New("security violation")

// SecurityError reports that a caller lacks a permission an operation
// requires. Permission managers return it to signal a violation.
type SecurityError struct {
	// Permission is the missing permission.
	Permission string

	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *SecurityError) Error() string {
	if e.Message == "" {
		return "security violation: need " + e.Permission + " permission"
	}
	return e.Message
}

// Is reports whether target is ErrSecurityViolation.
func (e *SecurityError) Is(target error) bool {
	return target == ErrSecurityViolation
}
