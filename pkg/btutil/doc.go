// Package btutil provides the byte-level helpers shared by the Bluetooth
// stack: scalar and string encodings of raw buffers, UUID serialization and
// device address handling.
//
// All functions are pure. Inputs are never modified and outputs are freshly
// allocated, so every helper is safe for concurrent use.
//
// # Byte Order
//
// Scalars read from controller buffers are little-endian:
//
//	v, _ := btutil.BytesToInt16([]byte{0x01, 0x02}) // 0x0201
//
// UUIDs are serialized most-significant-byte first, high 64-bit half before
// the low 64-bit half, 16 octets per UUID with no padding.
//
// # Hex Strings
//
// BytesToString renders buffers as lowercase hex pairs separated by a single
// space ("01 02"). This is the format used in debug logs throughout the stack.
//
// # Addresses
//
// Device addresses are canonical uppercase "HH:HH:HH:HH:HH:HH" strings.
// Logs must only ever carry the redacted form returned by LoggableAddress.
package btutil
