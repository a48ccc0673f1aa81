package btutil

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// UUIDLength is the serialized size of a UUID.
const UUIDLength = 16

// NewUUID builds a UUID from its most and least significant 64-bit halves.
func NewUUID(high, low uint64) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], high)
	binary.BigEndian.PutUint64(u[8:], low)
	return u
}

// UUIDHalves returns the most and least significant 64-bit halves of u.
func UUIDHalves(u uuid.UUID) (high, low uint64) {
	return binary.BigEndian.Uint64(u[:8]), binary.BigEndian.Uint64(u[8:])
}

// UUIDToBytes serializes a single UUID to 16 octets.
func UUIDToBytes(u uuid.UUID) []byte {
	return UUIDsToBytes([]uuid.UUID{u})
}

// UUIDsToBytes serializes uuids in order, 16 octets each: the high half then
// the low half, both big-endian. An empty list yields an empty slice.
func UUIDsToBytes(uuids []uuid.UUID) []byte {
	out := make([]byte, 0, len(uuids)*UUIDLength)
	for _, u := range uuids {
		high, low := UUIDHalves(u)
		out = binary.BigEndian.AppendUint64(out, high)
		out = binary.BigEndian.AppendUint64(out, low)
	}
	return out
}

// BytesToUUIDs is the inverse of UUIDsToBytes. The length of b must be a
// multiple of 16.
func BytesToUUIDs(b []byte) ([]uuid.UUID, error) {
	if len(b)%UUIDLength != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrInvalidLength, len(b), UUIDLength)
	}

	uuids := make([]uuid.UUID, 0, len(b)/UUIDLength)
	for off := 0; off < len(b); off += UUIDLength {
		uuids = append(uuids, NewUUID(
			binary.BigEndian.Uint64(b[off:]),
			binary.BigEndian.Uint64(b[off+8:]),
		))
	}
	return uuids, nil
}
