package btutil

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Errors returned by the decoders.
var (
	ErrInvalidLength  = errors.New("invalid length")
	ErrInvalidAddress = errors.New("invalid device address")
)

const hexDigits = "0123456789abcdef"

// BytesToInt16 decodes the first two octets of b as a little-endian int16.
// Octets beyond the first two are ignored.
func BytesToInt16(b []byte) (int16, error) {
	if len(b) < 2 {
		return 0, fmt.Errorf("%w: need 2 bytes, got %d", ErrInvalidLength, len(b))
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

// BytesToInt32 decodes b[offset:offset+4] as a little-endian int32.
func BytesToInt32(b []byte, offset int) (int32, error) {
	if offset < 0 || len(b)-offset < 4 {
		return 0, fmt.Errorf("%w: need 4 bytes at offset %d, got %d", ErrInvalidLength, offset, len(b))
	}
	return int32(binary.LittleEndian.Uint32(b[offset:])), nil
}

// Int32ToBytes encodes v as 4 little-endian octets.
func Int32ToBytes(v int32) []byte {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, 4), uint32(v))
}

// BytesToString renders b as lowercase hex pairs separated by single spaces,
// e.g. "01 02". An empty buffer yields "".
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(3*len(b) - 1)
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(hexDigits[v>>4])
		sb.WriteByte(hexDigits[v&0x0f])
	}
	return sb.String()
}
