package btutil

// Adapter states as reported by the host adapter service.
const (
	StateOff           = 10
	StateTurningOn     = 11
	StateOn            = 12
	StateTurningOff    = 13
	StateBLETurningOn  = 14
	StateBLEOn         = 15
	StateBLETurningOff = 16
)

// microsPerUnit is the controller's interval unit (0.625 ms).
const microsPerUnit = 625

// AdapterStateString returns the name of an adapter state for debug output.
func AdapterStateString(state int) string {
	switch state {
	case StateOff:
		return "STATE_OFF"
	case StateTurningOn:
		return "STATE_TURNING_ON"
	case StateOn:
		return "STATE_ON"
	case StateTurningOff:
		return "STATE_TURNING_OFF"
	case StateBLETurningOn:
		return "STATE_BLE_TURNING_ON"
	case StateBLEOn:
		return "STATE_BLE_ON"
	case StateBLETurningOff:
		return "STATE_BLE_TURNING_OFF"
	default:
		return "UNKNOWN"
	}
}

// MillisToUnit converts milliseconds to controller interval units,
// truncating toward zero.
func MillisToUnit(ms int) int {
	return ms * 1000 / microsPerUnit
}
