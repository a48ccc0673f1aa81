package btutil

import (
	"fmt"
	"strings"
)

const (
	// AddressLength is the number of octets in a device address.
	AddressLength = 6

	// AddressStringLength is the length of a canonical "HH:HH:HH:HH:HH:HH" address.
	AddressStringLength = 3*AddressLength - 1

	// MissingAddress is logged in place of an address when there is no device.
	MissingAddress = "00:00:00:00:00:00"

	// loggablePrefix replaces the first four octets of a logged address.
	loggablePrefix = "xx:xx:xx:xx:"
)

// Device is a remote Bluetooth device identified by its address.
// A nil *Device stands for "no device".
type Device struct {
	address string
}

// NewDevice returns a Device for addr. The address must be six
// colon-separated hex octets; it is stored in uppercase.
func NewDevice(addr string) (*Device, error) {
	if !validAddress(addr) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	return &Device{address: strings.ToUpper(addr)}, nil
}

// Address returns the canonical uppercase address.
func (d *Device) Address() string {
	return d.address
}

// String returns the loggable form of the address, so formatting a Device
// with %v never prints the full address.
func (d *Device) String() string {
	return LoggableAddress(d)
}

// LoggableAddress redacts the first four octets of the device address:
// "AA:BB:CC:DD:EE:FF" becomes "xx:xx:xx:xx:EE:FF". A nil device, or a zero
// Device not built by NewDevice, yields MissingAddress.
func LoggableAddress(d *Device) string {
	if d == nil || len(d.address) != AddressStringLength {
		return MissingAddress
	}
	return loggablePrefix + d.address[len(loggablePrefix):]
}

// AddressFromBytes formats six octets as a canonical uppercase address.
func AddressFromBytes(b []byte) (string, error) {
	if len(b) != AddressLength {
		return "", fmt.Errorf("%w: need %d address bytes, got %d", ErrInvalidLength, AddressLength, len(b))
	}
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5]), nil
}

// BytesFromAddress parses a "HH:HH:HH:HH:HH:HH" address into six octets,
// most significant first.
func BytesFromAddress(addr string) ([]byte, error) {
	if !validAddress(addr) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}

	out := make([]byte, AddressLength)
	for i := range out {
		out[i] = unhex(addr[3*i])<<4 | unhex(addr[3*i+1])
	}
	return out, nil
}

func validAddress(addr string) bool {
	if len(addr) != AddressStringLength {
		return false
	}
	for i := 0; i < len(addr); i++ {
		if i%3 == 2 {
			if addr[i] != ':' {
				return false
			}
			continue
		}
		if !isHex(addr[i]) {
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// unhex assumes c has already passed isHex.
func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
