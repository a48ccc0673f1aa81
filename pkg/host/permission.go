package host

// Permissions checked by the Bluetooth stack.
const (
	PermissionAccessCoarseLocation = "android.permission.ACCESS_COARSE_LOCATION"
	PermissionAccessFineLocation   = "android.permission.ACCESS_FINE_LOCATION"
	PermissionBluetoothAdvertise   = "android.permission.BLUETOOTH_ADVERTISE"
	PermissionBluetoothConnect     = "android.permission.BLUETOOTH_CONNECT"
	PermissionBluetoothScan        = "android.permission.BLUETOOTH_SCAN"
	PermissionBluetoothPrivileged  = "android.permission.BLUETOOTH_PRIVILEGED"
	PermissionWriteSMS             = "android.permission.WRITE_SMS"
	PermissionDump                 = "android.permission.DUMP"
)

// PermissionResult is the outcome of a permission check.
type PermissionResult uint8

const (
	// PermissionGranted indicates the permission is held.
	PermissionGranted PermissionResult = 0

	// PermissionSoftDenied indicates the permission is not held but the
	// caller may proceed with degraded results.
	PermissionSoftDenied PermissionResult = 1

	// PermissionHardDenied indicates the permission is not held and the
	// operation must be refused.
	PermissionHardDenied PermissionResult = 2
)

// String returns the result name.
func (r PermissionResult) String() string {
	switch r {
	case PermissionGranted:
		return "GRANTED"
	case PermissionSoftDenied:
		return "SOFT_DENIED"
	case PermissionHardDenied:
		return "HARD_DENIED"
	default:
		return "UNKNOWN"
	}
}

// ParsePermissionResult parses a result name as returned by String.
func ParsePermissionResult(s string) (PermissionResult, bool) {
	switch s {
	case "GRANTED":
		return PermissionGranted, true
	case "SOFT_DENIED":
		return PermissionSoftDenied, true
	case "HARD_DENIED":
		return PermissionHardDenied, true
	default:
		return 0, false
	}
}
