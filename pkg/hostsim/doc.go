// Package hostsim is an in-memory host for the Bluetooth stack.
//
// A Host implements host.Platform, host.LocationController and
// host.PermissionManager from a Policy, so guards can be exercised without a
// real operating system. Policies are usually loaded from YAML:
//
//	package: com.android.bluetooth
//	uid: 1002
//	default: HARD_DENIED
//	location:
//	  enabled: true
//	  users:
//	    10: false
//	self:
//	  DUMP: GRANTED
//	packages:
//	  com.example.scanner:
//	    BLUETOOTH_SCAN: GRANTED
//	    ACCESS_FINE_LOCATION: SOFT_DENIED
//
// Permission names without a dot are taken to be android.permission names.
//
// Location state can be persisted between processes with a StateStore.
package hostsim
