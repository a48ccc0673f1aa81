package guard

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mash-protocol/bt-go/pkg/audit"
	"github.com/mash-protocol/bt-go/pkg/host"
)

// Guard names recorded in audit events.
const (
	CheckServiceAvailableName                   = "CheckServiceAvailable"
	BlockedByLocationOffName                    = "BlockedByLocationOff"
	CheckCallerHasCoarseLocationName            = "CheckCallerHasCoarseLocation"
	CheckCallerHasFineLocationName              = "CheckCallerHasFineLocation"
	CheckCallerHasCoarseOrFineLocationName      = "CheckCallerHasCoarseOrFineLocation"
	CheckAdvertisePermissionForDataDeliveryName = "CheckAdvertisePermissionForDataDelivery"
	CheckAdvertisePermissionForPreflightName    = "CheckAdvertisePermissionForPreflight"
	CheckScanPermissionForDataDeliveryName      = "CheckScanPermissionForDataDelivery"
	CheckScanPermissionForPreflightName         = "CheckScanPermissionForPreflight"
	CheckConnectPermissionForDataDeliveryName   = "CheckConnectPermissionForDataDelivery"
	CheckConnectPermissionForPreflightName      = "CheckConnectPermissionForPreflight"
	CheckCallerHasWriteSmsPermissionName        = "CheckCallerHasWriteSmsPermission"
	CheckCallerHasPrivilegedPermissionName      = "CheckCallerHasPrivilegedPermission"
	EnforceDumpPermissionName                   = "EnforceDumpPermission"
	EnforceBluetoothPrivilegedPermissionName    = "EnforceBluetoothPrivilegedPermission"
)

// locationCheckMessage is noted with location data-delivery checks.
const locationCheckMessage = "Bluetooth location check"

// Config configures a Checker.
type Config struct {
	// Logger is the optional logger for denials and violations.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// Audit receives one event per decision.
	// If nil, decisions are not audited.
	Audit audit.Logger
}

// Checker runs guards against a host platform.
// It holds no mutable state and is safe for concurrent use if the platform is.
type Checker struct {
	platform host.Platform
	logger   *slog.Logger
	audit    audit.Logger
	now      func() time.Time
}

// New creates a Checker for platform.
func New(platform host.Platform, cfg Config) *Checker {
	c := &Checker{
		platform: platform,
		logger:   cfg.Logger,
		audit:    cfg.Audit,
		now:      time.Now,
	}
	if c.audit == nil {
		c.audit = audit.NoopLogger{}
	}
	return c
}

// CheckServiceAvailable is the audited form of the package-level
// CheckServiceAvailable.
func (c *Checker) CheckServiceAvailable(svc host.ServiceHandle, tag string) bool {
	ok, reason := serviceAvailable(svc, tag, c.logger)
	ev := c.event(CheckServiceAvailableName, "")
	ev.Tag = tag
	ev.Reason = reason
	if !ok {
		ev.Outcome = audit.OutcomeUnavailable
	}
	c.audit.Log(ev)
	return ok
}

// BlockedByLocationOff reports whether location is disabled for user.
// A platform without a location service counts as location off.
func (c *Checker) BlockedByLocationOff(user host.UserHandle) bool {
	blocked := c.locationOff(user)
	ev := c.userEvent(BlockedByLocationOffName, "", user)
	if blocked {
		ev.Outcome = audit.OutcomeDenied
		ev.Reason = "location off"
	}
	c.audit.Log(ev)
	return blocked
}

// CheckCallerHasCoarseLocation reports whether the caller may receive
// coarse location derived data for user. It is always false while location
// is off. attr may be nil.
func (c *Checker) CheckCallerHasCoarseLocation(attr *host.AttributionSource, user host.UserHandle) bool {
	return c.checkLocation(CheckCallerHasCoarseLocationName, attr, user, host.PermissionAccessCoarseLocation)
}

// CheckCallerHasFineLocation is CheckCallerHasCoarseLocation for fine
// location.
func (c *Checker) CheckCallerHasFineLocation(attr *host.AttributionSource, user host.UserHandle) bool {
	return c.checkLocation(CheckCallerHasFineLocationName, attr, user, host.PermissionAccessFineLocation)
}

// CheckCallerHasCoarseOrFineLocation accepts either granularity; fine
// location is checked first.
func (c *Checker) CheckCallerHasCoarseOrFineLocation(attr *host.AttributionSource, user host.UserHandle) bool {
	return c.checkLocation(CheckCallerHasCoarseOrFineLocationName, attr, user,
		host.PermissionAccessFineLocation, host.PermissionAccessCoarseLocation)
}

func (c *Checker) checkLocation(check string, attr *host.AttributionSource, user host.UserHandle, perms ...string) bool {
	ev := c.attributedEvent(check, "", attr)
	uid := user.ID
	ev.UserID = &uid

	if c.locationOff(user) {
		c.logError("Permission denial: location is off", "check", check, "user", user.ID)
		ev.Outcome = audit.OutcomeDenied
		ev.Reason = "location off"
		c.audit.Log(ev)
		return false
	}

	pm := c.platform.Permissions()
	if isNil(pm) {
		ev.Outcome = audit.OutcomeDenied
		ev.Reason = "no permission manager"
		c.audit.Log(ev)
		return false
	}

	chain := c.platform.Attribution().Chain(attr)
	for _, perm := range perms {
		result, err := pm.CheckPermissionForDataDelivery(perm, chain, locationCheckMessage)
		if err != nil {
			// Location checks only probe; a violation is a denial.
			c.logError("location permission check failed", "check", check, "permission", perm, "error", err)
			ev.Permission = perm
			ev.Outcome = outcomeForError(err)
			ev.Reason = err.Error()
			c.audit.Log(ev)
			return false
		}
		if result == host.PermissionGranted {
			ev.Permission = perm
			c.audit.Log(ev)
			return true
		}
	}

	c.logError("Permission denial: need location permission to get scan results", "check", check, "caller", chain.String())
	ev.Permission = perms[len(perms)-1]
	ev.Outcome = audit.OutcomeDenied
	ev.Reason = "permission not granted"
	c.audit.Log(ev)
	return false
}

// CheckAdvertisePermissionForDataDelivery checks BLUETOOTH_ADVERTISE for
// the caller chain, noting the access with message.
func (c *Checker) CheckAdvertisePermissionForDataDelivery(attr *host.AttributionSource, message string) (bool, error) {
	return c.checkForDataDelivery(CheckAdvertisePermissionForDataDeliveryName, host.PermissionBluetoothAdvertise, attr, message)
}

// CheckAdvertisePermissionForPreflight checks BLUETOOTH_ADVERTISE without
// noting an access.
func (c *Checker) CheckAdvertisePermissionForPreflight() (bool, error) {
	return c.checkForPreflight(CheckAdvertisePermissionForPreflightName, host.PermissionBluetoothAdvertise)
}

// CheckScanPermissionForDataDelivery checks BLUETOOTH_SCAN for the caller
// chain, noting the access with message.
func (c *Checker) CheckScanPermissionForDataDelivery(attr *host.AttributionSource, message string) (bool, error) {
	return c.checkForDataDelivery(CheckScanPermissionForDataDeliveryName, host.PermissionBluetoothScan, attr, message)
}

// CheckScanPermissionForPreflight checks BLUETOOTH_SCAN without noting an
// access.
func (c *Checker) CheckScanPermissionForPreflight() (bool, error) {
	return c.checkForPreflight(CheckScanPermissionForPreflightName, host.PermissionBluetoothScan)
}

// CheckConnectPermissionForDataDelivery checks BLUETOOTH_CONNECT for the
// caller chain, noting the access with message.
func (c *Checker) CheckConnectPermissionForDataDelivery(attr *host.AttributionSource, message string) (bool, error) {
	return c.checkForDataDelivery(CheckConnectPermissionForDataDeliveryName, host.PermissionBluetoothConnect, attr, message)
}

// CheckConnectPermissionForPreflight checks BLUETOOTH_CONNECT without
// noting an access.
func (c *Checker) CheckConnectPermissionForPreflight() (bool, error) {
	return c.checkForPreflight(CheckConnectPermissionForPreflightName, host.PermissionBluetoothConnect)
}

// CheckCallerHasWriteSmsPermission checks WRITE_SMS for the calling process.
func (c *Checker) CheckCallerHasWriteSmsPermission() (bool, error) {
	ev := c.event(CheckCallerHasWriteSmsPermissionName, host.PermissionWriteSMS)
	pm := c.platform.Permissions()
	if isNil(pm) {
		return c.denied(ev, "no permission manager")
	}
	return c.resolve(ev, pm.CheckCallingOrSelfPermission(host.PermissionWriteSMS),
		"Need "+host.PermissionWriteSMS+" permission")
}

// CheckCallerHasPrivilegedPermission reports whether the calling process
// holds BLUETOOTH_PRIVILEGED.
func (c *Checker) CheckCallerHasPrivilegedPermission() bool {
	ev := c.event(CheckCallerHasPrivilegedPermissionName, host.PermissionBluetoothPrivileged)
	pm := c.platform.Permissions()
	granted := !isNil(pm) && pm.CheckCallingOrSelfPermission(host.PermissionBluetoothPrivileged) == host.PermissionGranted
	if !granted {
		ev.Outcome = audit.OutcomeDenied
	}
	c.audit.Log(ev)
	return granted
}

// EnforceDumpPermission returns the host's security violation unless the
// caller holds DUMP.
func (c *Checker) EnforceDumpPermission() error {
	return c.enforce(EnforceDumpPermissionName, host.PermissionDump, "Need DUMP permission")
}

// EnforceBluetoothPrivilegedPermission returns the host's security violation
// unless the caller holds BLUETOOTH_PRIVILEGED.
func (c *Checker) EnforceBluetoothPrivilegedPermission() error {
	return c.enforce(EnforceBluetoothPrivilegedPermissionName, host.PermissionBluetoothPrivileged,
		"Need BLUETOOTH PRIVILEGED permission")
}

func (c *Checker) enforce(check, perm, message string) error {
	ev := c.event(check, perm)
	pm := c.platform.Permissions()
	if isNil(pm) {
		err := &SecurityError{Permission: perm, Message: message}
		ev.Outcome = audit.OutcomeViolation
		ev.Reason = "no permission manager"
		c.audit.Log(ev)
		return err
	}

	if err := pm.EnforceCallingOrSelfPermission(perm, message); err != nil {
		c.logWarn("permission enforcement failed", "check", check, "permission", perm, "error", err)
		ev.Outcome = outcomeForError(err)
		ev.Reason = err.Error()
		c.audit.Log(ev)
		return err
	}
	c.audit.Log(ev)
	return nil
}

func (c *Checker) checkForDataDelivery(check, perm string, attr *host.AttributionSource, message string) (bool, error) {
	ev := c.attributedEvent(check, perm, attr)
	ev.Message = message
	pm := c.platform.Permissions()
	if isNil(pm) {
		return c.denied(ev, "no permission manager")
	}

	chain := c.platform.Attribution().Chain(attr)
	result, err := pm.CheckPermissionForDataDelivery(perm, chain, message)
	if err != nil {
		return c.failed(ev, err)
	}
	caller := chain
	if attr != nil {
		caller = *attr
	}
	return c.resolve(ev, result, fmt.Sprintf("Need %s permission for %s: %s", perm, caller, message))
}

func (c *Checker) checkForPreflight(check, perm string) (bool, error) {
	ev := c.event(check, perm)
	pm := c.platform.Permissions()
	if isNil(pm) {
		return c.denied(ev, "no permission manager")
	}

	result, err := pm.CheckPermissionForPreflight(perm, c.platform.Attribution())
	if err != nil {
		return c.failed(ev, err)
	}
	return c.resolve(ev, result, "Need "+perm+" permission")
}

// resolve maps a permission result onto the (bool, error) contract:
// granted passes, soft denial is a plain false, hard denial is a violation.
func (c *Checker) resolve(ev audit.Event, result host.PermissionResult, message string) (bool, error) {
	switch result {
	case host.PermissionGranted:
		c.audit.Log(ev)
		return true, nil
	case host.PermissionHardDenied:
		err := &SecurityError{Permission: ev.Permission, Message: message}
		c.logWarn(message, "check", ev.Check)
		ev.Outcome = audit.OutcomeViolation
		ev.Reason = message
		c.audit.Log(ev)
		return false, err
	default:
		c.logWarn(message, "check", ev.Check, "result", result.String())
		return c.denied(ev, message)
	}
}

func (c *Checker) denied(ev audit.Event, reason string) (bool, error) {
	ev.Outcome = audit.OutcomeDenied
	ev.Reason = reason
	c.audit.Log(ev)
	return false, nil
}

// failed surfaces an error from the permission manager unchanged.
func (c *Checker) failed(ev audit.Event, err error) (bool, error) {
	c.logWarn("permission check failed", "check", ev.Check, "permission", ev.Permission, "error", err)
	ev.Outcome = outcomeForError(err)
	ev.Reason = err.Error()
	c.audit.Log(ev)
	return false, err
}

func (c *Checker) locationOff(user host.UserHandle) bool {
	loc := c.platform.Location()
	if isNil(loc) {
		return true
	}
	return !loc.IsLocationEnabledForUser(user)
}

func (c *Checker) event(check, perm string) audit.Event {
	self := c.platform.Attribution()
	return audit.Event{
		Timestamp:  c.now(),
		Check:      check,
		Permission: perm,
		Outcome:    audit.OutcomeAllowed,
		Package:    self.PackageName,
		UID:        self.UID,
	}
}

// attributedEvent names the calling app when there is one, the Bluetooth
// process otherwise.
func (c *Checker) attributedEvent(check, perm string, attr *host.AttributionSource) audit.Event {
	ev := c.event(check, perm)
	if attr != nil {
		ev.Package = attr.PackageName
		ev.UID = attr.UID
	}
	return ev
}

func (c *Checker) userEvent(check, perm string, user host.UserHandle) audit.Event {
	ev := c.event(check, perm)
	uid := user.ID
	ev.UserID = &uid
	return ev
}

func (c *Checker) logWarn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

func (c *Checker) logError(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Error(msg, args...)
	}
}

func outcomeForError(err error) audit.Outcome {
	if IsSecurityViolation(err) {
		return audit.OutcomeViolation
	}
	return audit.OutcomeDenied
}
