package btutil

import (
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDsToBytes(t *testing.T) {
	uuids := []uuid.UUID{NewUUID(10, 20), NewUUID(30, 40)}

	want := make([]byte, 32)
	binary.BigEndian.PutUint64(want[0:], 10)
	binary.BigEndian.PutUint64(want[8:], 20)
	binary.BigEndian.PutUint64(want[16:], 30)
	binary.BigEndian.PutUint64(want[24:], 40)

	assert.Equal(t, want, UUIDsToBytes(uuids))
}

func TestUUIDsToBytesEmpty(t *testing.T) {
	got := UUIDsToBytes(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUUIDsToBytesSingle(t *testing.T) {
	u := uuid.MustParse("0000110b-0000-1000-8000-00805f9b34fb")
	got := UUIDsToBytes([]uuid.UUID{u})
	assert.Equal(t, u[:], got)
	assert.Equal(t, got, UUIDToBytes(u))
}

func TestUUIDsToBytesWindows(t *testing.T) {
	var uuids []uuid.UUID
	for i := uint64(0); i < 8; i++ {
		uuids = append(uuids, NewUUID(i*0x0101010101010101, ^i))
	}

	b := UUIDsToBytes(uuids)
	require.Len(t, b, 16*len(uuids))

	for i, u := range uuids {
		high, low := UUIDHalves(u)
		window := b[16*i : 16*(i+1)]
		assert.Equal(t, high, binary.BigEndian.Uint64(window[:8]), "uuid %d high", i)
		assert.Equal(t, low, binary.BigEndian.Uint64(window[8:]), "uuid %d low", i)
	}
}

func TestUUIDHalves(t *testing.T) {
	u := uuid.MustParse("01234567-89ab-cdef-fedc-ba9876543210")
	high, low := UUIDHalves(u)
	assert.Equal(t, uint64(0x0123456789abcdef), high)
	assert.Equal(t, uint64(0xfedcba9876543210), low)
	assert.Equal(t, u, NewUUID(high, low))
}

func TestBytesToUUIDs(t *testing.T) {
	uuids := []uuid.UUID{NewUUID(10, 20), NewUUID(30, 40), uuid.New()}

	got, err := BytesToUUIDs(UUIDsToBytes(uuids))
	require.NoError(t, err)
	assert.Equal(t, uuids, got)

	got, err = BytesToUUIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = BytesToUUIDs(make([]byte, 17))
	assert.ErrorIs(t, err, ErrInvalidLength)
}
