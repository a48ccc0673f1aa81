// Package host declares the capabilities the Bluetooth stack consumes from the
// host operating system: the platform context, location services, the
// permission manager and profile service lifecycle.
//
// The stack never reaches into the host directly. Every host facility is an
// interface passed in by the caller, so production code binds them to the
// real platform and tests bind them to in-memory implementations (see
// package hostsim) or mocks (package host/mocks).
package host
