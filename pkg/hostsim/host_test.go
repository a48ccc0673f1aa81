package hostsim

import (
	"sync"
	"testing"

	"github.com/mash-protocol/bt-go/pkg/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	p, err := ParsePolicy([]byte(testPolicy))
	require.NoError(t, err)
	return New(p)
}

func TestNewDefaults(t *testing.T) {
	h := New(nil)
	assert.Equal(t, DefaultPackage, h.Attribution().PackageName)
	assert.Equal(t, DefaultUID, h.Attribution().UID)
	assert.False(t, h.IsLocationEnabledForUser(host.UserSystem))
	assert.Equal(t, host.PermissionHardDenied, h.CheckCallingOrSelfPermission(host.PermissionDump))
}

func TestLocation(t *testing.T) {
	h := newTestHost(t)

	assert.True(t, h.IsLocationEnabledForUser(host.UserSystem))
	assert.False(t, h.IsLocationEnabledForUser(host.UserHandle{ID: 10}))

	h.SetLocationEnabledForUser(host.UserSystem, false)
	assert.False(t, h.IsLocationEnabledForUser(host.UserSystem))
	assert.False(t, h.IsLocationEnabledForUser(host.UserHandle{ID: 10}))

	h.SetLocationEnabledForUser(host.UserHandle{ID: 10}, true)
	assert.True(t, h.IsLocationEnabledForUser(host.UserHandle{ID: 10}))
	assert.True(t, h.IsLocationEnabledForUser(host.UserHandle{ID: 11}), "unlisted users follow the default")
}

func TestCallingOrSelf(t *testing.T) {
	h := newTestHost(t)

	assert.Equal(t, host.PermissionGranted, h.CheckCallingOrSelfPermission(host.PermissionDump))
	assert.Equal(t, host.PermissionSoftDenied, h.CheckCallingOrSelfPermission(host.PermissionWriteSMS))

	assert.NoError(t, h.EnforceCallingOrSelfPermission(host.PermissionDump, "Need DUMP permission"))

	err := h.EnforceCallingOrSelfPermission(host.PermissionBluetoothPrivileged, "Need BLUETOOTH PRIVILEGED permission")
	require.Error(t, err)
	assert.ErrorIs(t, err, host.ErrSecurityViolation)
	assert.EqualError(t, err, "Need BLUETOOTH PRIVILEGED permission")
}

func TestDataDeliveryChain(t *testing.T) {
	h := newTestHost(t)
	h.Grant(DefaultPackage, "BLUETOOTH_SCAN", host.PermissionGranted)

	app := &host.AttributionSource{UID: 10123, PackageName: "com.example.scanner"}
	chain := h.Attribution().Chain(app)

	result, err := h.CheckPermissionForDataDelivery(host.PermissionBluetoothScan, chain, "scan")
	require.NoError(t, err)
	assert.Equal(t, host.PermissionGranted, result)

	// Self lacks fine location (default SOFT_DENIED), app is HARD_DENIED: worst wins
	result, err = h.CheckPermissionForDataDelivery(host.PermissionAccessFineLocation, chain, "location")
	require.NoError(t, err)
	assert.Equal(t, host.PermissionHardDenied, result)

	// Unknown app falls back to the default
	other := h.Attribution().Chain(&host.AttributionSource{UID: 10200, PackageName: "com.example.other"})
	result, err = h.CheckPermissionForDataDelivery(host.PermissionBluetoothScan, other, "scan")
	require.NoError(t, err)
	assert.Equal(t, host.PermissionSoftDenied, result)

	accesses := h.Accesses()
	require.Len(t, accesses, 3)
	assert.Equal(t, "scan", accesses[0].Message)
	assert.Equal(t, host.PermissionGranted, accesses[0].Result)
	assert.Equal(t, "com.example.scanner", accesses[0].Caller.Next.PackageName)
}

func TestPreflightDoesNotNoteAccess(t *testing.T) {
	h := newTestHost(t)
	h.Grant(DefaultPackage, host.PermissionBluetoothConnect, host.PermissionGranted)

	result, err := h.CheckPermissionForPreflight(host.PermissionBluetoothConnect, h.Attribution())
	require.NoError(t, err)
	assert.Equal(t, host.PermissionGranted, result)
	assert.Empty(t, h.Accesses())
}

func TestGrantCreatesPackage(t *testing.T) {
	h := New(nil)
	h.Grant("com.example.new", "BLUETOOTH_CONNECT", host.PermissionGranted)
	h.Grant(DefaultPackage, "BLUETOOTH_CONNECT", host.PermissionGranted)

	chain := h.Attribution().Chain(&host.AttributionSource{UID: 10300, PackageName: "com.example.new"})
	result, err := h.CheckPermissionForPreflight(host.PermissionBluetoothConnect, chain)
	require.NoError(t, err)
	assert.Equal(t, host.PermissionGranted, result)
}

func TestHostConcurrentUse(t *testing.T) {
	h := newTestHost(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := host.UserHandle{ID: i % 4}
			h.SetLocationEnabledForUser(user, i%2 == 0)
			_ = h.IsLocationEnabledForUser(user)
			_, _ = h.CheckPermissionForDataDelivery(host.PermissionBluetoothScan, h.Attribution(), "scan")
		}(i)
	}
	wg.Wait()
	assert.Len(t, h.Accesses(), 16)
}

func TestService(t *testing.T) {
	s := NewService("A2dpService", false)
	assert.Equal(t, "A2dpService", s.Name())
	assert.False(t, s.IsAvailable())
	s.SetAvailable(true)
	assert.True(t, s.IsAvailable())

	var _ host.ServiceHandle = s
}
