package hostsim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mash-protocol/bt-go/pkg/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPolicy = `
package: com.android.bluetooth
uid: 1002
default: SOFT_DENIED
location:
  enabled: true
  users:
    10: false
self:
  DUMP: GRANTED
packages:
  com.example.scanner:
    BLUETOOTH_SCAN: GRANTED
    android.permission.ACCESS_FINE_LOCATION: HARD_DENIED
`

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy([]byte(testPolicy))
	require.NoError(t, err)

	assert.Equal(t, "com.android.bluetooth", p.Package)
	assert.Equal(t, 1002, p.UID)
	assert.Equal(t, "SOFT_DENIED", p.Default)
	assert.True(t, p.Location.Enabled)
	assert.Equal(t, map[int]bool{10: false}, p.Location.Users)
	assert.Equal(t, "GRANTED", p.Self["DUMP"])
	assert.Equal(t, "GRANTED", p.Packages["com.example.scanner"]["BLUETOOTH_SCAN"])
}

func TestParsePolicyRejectsUnknownResult(t *testing.T) {
	tests := map[string]string{
		"default":  "default: MAYBE\n",
		"self":     "self:\n  DUMP: yes\n",
		"packages": "packages:\n  com.example:\n    BLUETOOTH_SCAN: granted\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePolicy([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParsePolicyRejectsMalformedYAML(t *testing.T) {
	_, err := ParsePolicy([]byte("packages: [unterminated"))
	assert.Error(t, err)
}

func TestLoadPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testPolicy), 0o600))

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, 1002, p.UID)

	_, err = LoadPolicy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPermissionName(t *testing.T) {
	assert.Equal(t, host.PermissionBluetoothScan, PermissionName("BLUETOOTH_SCAN"))
	assert.Equal(t, host.PermissionBluetoothScan, PermissionName(host.PermissionBluetoothScan))
	assert.Equal(t, "com.vendor.permission.X", PermissionName("com.vendor.permission.X"))
}
