package btutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggableAddress(t *testing.T) {
	assert.Equal(t, "00:00:00:00:00:00", LoggableAddress(nil))

	d, err := NewDevice("AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	assert.Equal(t, "xx:xx:xx:xx:EE:FF", LoggableAddress(d))
}

func TestLoggableAddressShape(t *testing.T) {
	for i := 0; i < 256; i += 5 {
		addr := fmt.Sprintf("00:01:02:03:%02X:%02X", i, 255-i)
		d, err := NewDevice(addr)
		require.NoError(t, err)

		got := LoggableAddress(d)
		assert.Len(t, got, AddressStringLength)
		assert.True(t, strings.HasPrefix(got, "xx:xx:xx:xx:"))
		assert.Equal(t, addr[12:], got[12:])
		for _, pos := range []int{2, 5, 8, 11, 14} {
			assert.Equal(t, byte(':'), got[pos])
		}
	}
}

func TestLoggableAddressZeroDevice(t *testing.T) {
	assert.Equal(t, MissingAddress, LoggableAddress(&Device{}))
}

func TestDeviceStringIsRedacted(t *testing.T) {
	d, err := NewDevice("00:11:22:33:44:55")
	require.NoError(t, err)
	assert.Equal(t, "xx:xx:xx:xx:44:55", fmt.Sprintf("%v", d))
	assert.Equal(t, "00:11:22:33:44:55", d.Address())
}

func TestNewDeviceCanonicalizes(t *testing.T) {
	d, err := NewDevice("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", d.Address())
	assert.Equal(t, "xx:xx:xx:xx:EE:FF", LoggableAddress(d))
}

func TestNewDeviceRejectsMalformed(t *testing.T) {
	for _, addr := range []string{
		"",
		"AA:BB:CC:DD:EE",
		"AA:BB:CC:DD:EE:FF:00",
		"AA-BB-CC-DD-EE-FF",
		"AABBCCDDEEFF",
		"GG:BB:CC:DD:EE:FF",
		"AA:BB:CC:DD:EE:F ",
	} {
		_, err := NewDevice(addr)
		assert.ErrorIs(t, err, ErrInvalidAddress, "address %q", addr)
	}
}

func TestAddressBytes(t *testing.T) {
	b := []byte{0xaa, 0xbb, 0xcc, 0x01, 0x02, 0x03}

	addr, err := AddressFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, "AA:BB:CC:01:02:03", addr)

	got, err := BytesFromAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	got, err = BytesFromAddress("aa:bb:cc:01:02:03")
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = AddressFromBytes(b[:5])
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = BytesFromAddress("not an address")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
