package hostsim

import (
	"fmt"
	"os"
	"strings"

	"github.com/mash-protocol/bt-go/pkg/host"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a policy leaves a field empty.
const (
	DefaultPackage = "com.android.bluetooth"
	DefaultUID     = 1002
)

const permissionPrefix = "android.permission."

// Policy describes how a simulated host answers.
type Policy struct {
	// Package and UID identify the Bluetooth process itself.
	Package string `yaml:"package"`
	UID     int    `yaml:"uid"`

	// Default is the result for any permission not listed.
	// Empty means HARD_DENIED.
	Default string `yaml:"default"`

	// Location is the initial location state.
	Location LocationPolicy `yaml:"location"`

	// Self lists results for the Bluetooth process's own permissions.
	Self map[string]string `yaml:"self"`

	// Packages lists results per calling package.
	Packages map[string]map[string]string `yaml:"packages"`
}

// LocationPolicy is the initial location state.
type LocationPolicy struct {
	// Enabled is the state for users not listed in Users.
	Enabled bool `yaml:"enabled"`

	// Users overrides Enabled per user ID.
	Users map[int]bool `yaml:"users"`
}

// LoadPolicy reads a YAML policy file.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}
	return ParsePolicy(data)
}

// ParsePolicy parses and validates a YAML policy.
func ParsePolicy(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that every result name is known.
func (p *Policy) Validate() error {
	if p.Default != "" {
		if _, ok := host.ParsePermissionResult(p.Default); !ok {
			return fmt.Errorf("invalid default result %q", p.Default)
		}
	}
	for perm, r := range p.Self {
		if _, ok := host.ParsePermissionResult(r); !ok {
			return fmt.Errorf("self: invalid result %q for %s", r, perm)
		}
	}
	for pkg, grants := range p.Packages {
		for perm, r := range grants {
			if _, ok := host.ParsePermissionResult(r); !ok {
				return fmt.Errorf("package %s: invalid result %q for %s", pkg, r, perm)
			}
		}
	}
	return nil
}

// PermissionName expands short names like "BLUETOOTH_SCAN" to
// "android.permission.BLUETOOTH_SCAN". Qualified names are returned as is.
func PermissionName(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return permissionPrefix + name
}

// compile converts result names, which Validate has already checked.
func compile(in map[string]string) map[string]host.PermissionResult {
	out := make(map[string]host.PermissionResult, len(in))
	for perm, r := range in {
		result, _ := host.ParsePermissionResult(r)
		out[PermissionName(perm)] = result
	}
	return out
}
