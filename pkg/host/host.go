package host

import "fmt"

// UserHandle identifies a user on the host.
type UserHandle struct {
	ID int
}

// UserSystem is the system user.
var UserSystem = UserHandle{ID: 0}

// AttributionSource identifies the caller of an operation for permission
// accounting. Sources chain: Next is the app on whose behalf this source acts.
type AttributionSource struct {
	UID         int
	PackageName string
	Next        *AttributionSource
}

// Chain returns a copy of s with next appended to the end of its chain.
// A nil next returns a copy of s unchanged.
func (s AttributionSource) Chain(next *AttributionSource) AttributionSource {
	if next == nil {
		return s
	}
	n := *next
	if s.Next != nil {
		n = s.Next.Chain(next)
	}
	s.Next = &n
	return s
}

// String returns "uid/package" for the head of the chain.
func (s AttributionSource) String() string {
	return fmt.Sprintf("%d/%s", s.UID, s.PackageName)
}

// Platform is the host context handed to the Bluetooth stack.
type Platform interface {
	// Attribution returns the attribution of the Bluetooth process itself.
	Attribution() AttributionSource

	// Location returns the host location service.
	Location() LocationService

	// Permissions returns the host permission manager.
	Permissions() PermissionManager
}

// LocationService reports whether location is enabled per user.
type LocationService interface {
	IsLocationEnabledForUser(user UserHandle) bool
}

// LocationController is a LocationService whose state can be changed.
// Only privileged callers and tests have one.
type LocationController interface {
	LocationService
	SetLocationEnabledForUser(user UserHandle, enabled bool)
}

// PermissionManager answers permission checks.
//
// Implementations may signal a security violation by returning a non-nil
// error from any method that returns one; callers surface it unchanged.
type PermissionManager interface {
	// CheckPermissionForDataDelivery checks perm for the whole attribution
	// chain, noting the access with message.
	CheckPermissionForDataDelivery(perm string, attr AttributionSource, message string) (PermissionResult, error)

	// CheckPermissionForPreflight checks perm without noting an access.
	CheckPermissionForPreflight(perm string, attr AttributionSource) (PermissionResult, error)

	// CheckCallingOrSelfPermission checks perm for the current caller or
	// the Bluetooth process itself.
	CheckCallingOrSelfPermission(perm string) PermissionResult

	// EnforceCallingOrSelfPermission returns an error describing the
	// violation unless the caller holds perm.
	EnforceCallingOrSelfPermission(perm string, message string) error
}

// ServiceHandle is a profile service whose availability can be queried.
type ServiceHandle interface {
	IsAvailable() bool
}
