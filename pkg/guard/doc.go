// Package guard implements the permission, location and service
// availability checks performed at the Bluetooth stack's API boundary.
//
// Guards never talk to the host directly; they route through the
// capabilities of a host.Platform. A guard either returns a plain answer or,
// for checks that enforce, a *SecurityError describing the violation. The
// error channel is orthogonal to the boolean result, so callers choose how
// to consume it:
//
//	// Enforcing caller: propagate the violation.
//	ok, err := checker.CheckScanPermissionForPreflight()
//	if err != nil {
//	    return err
//	}
//
//	// Probing caller: a violation is just a "no".
//	if guard.Probe(checker.CheckScanPermissionForPreflight()) {
//	    ...
//	}
//
// Every decision is written to the Checker's audit logger.
package guard
