package hostsim

import (
	"sync"

	"github.com/mash-protocol/bt-go/pkg/host"
)

// Access is a data-delivery access noted by the permission manager.
type Access struct {
	Permission string
	Caller     host.AttributionSource
	Message    string
	Result     host.PermissionResult
}

// Host is a simulated host. It is safe for concurrent use.
type Host struct {
	self host.AttributionSource

	mu              sync.RWMutex
	defaultResult   host.PermissionResult
	locationDefault bool
	location        map[int]bool
	selfGrants      map[string]host.PermissionResult
	packageGrants   map[string]map[string]host.PermissionResult
	accesses        []Access
}

// New creates a Host from policy. A nil policy denies everything and has
// location disabled.
func New(policy *Policy) *Host {
	if policy == nil {
		policy = &Policy{}
	}

	h := &Host{
		self: host.AttributionSource{
			UID:         policy.UID,
			PackageName: policy.Package,
		},
		defaultResult:   host.PermissionHardDenied,
		locationDefault: policy.Location.Enabled,
		location:        make(map[int]bool, len(policy.Location.Users)),
		selfGrants:      compile(policy.Self),
		packageGrants:   make(map[string]map[string]host.PermissionResult, len(policy.Packages)),
	}
	if h.self.PackageName == "" {
		h.self.PackageName = DefaultPackage
	}
	if h.self.UID == 0 {
		h.self.UID = DefaultUID
	}
	if r, ok := host.ParsePermissionResult(policy.Default); ok {
		h.defaultResult = r
	}
	for user, enabled := range policy.Location.Users {
		h.location[user] = enabled
	}
	for pkg, grants := range policy.Packages {
		h.packageGrants[pkg] = compile(grants)
	}
	return h
}

// Attribution implements host.Platform.
func (h *Host) Attribution() host.AttributionSource {
	return h.self
}

// Location implements host.Platform.
func (h *Host) Location() host.LocationService {
	return h
}

// Permissions implements host.Platform.
func (h *Host) Permissions() host.PermissionManager {
	return h
}

// IsLocationEnabledForUser implements host.LocationService.
func (h *Host) IsLocationEnabledForUser(user host.UserHandle) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if enabled, ok := h.location[user.ID]; ok {
		return enabled
	}
	return h.locationDefault
}

// SetLocationEnabledForUser implements host.LocationController.
func (h *Host) SetLocationEnabledForUser(user host.UserHandle, enabled bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.location[user.ID] = enabled
}

// Grant sets the result of perm for pkg. The Bluetooth package's own
// results are those answered to calling-or-self checks.
func (h *Host) Grant(pkg, perm string, result host.PermissionResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	perm = PermissionName(perm)
	if pkg == h.self.PackageName {
		h.selfGrants[perm] = result
		return
	}
	grants, ok := h.packageGrants[pkg]
	if !ok {
		grants = make(map[string]host.PermissionResult)
		h.packageGrants[pkg] = grants
	}
	grants[perm] = result
}

// Accesses returns the data-delivery accesses noted so far.
func (h *Host) Accesses() []Access {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Access, len(h.accesses))
	copy(out, h.accesses)
	return out
}

// CheckPermissionForDataDelivery implements host.PermissionManager. Every
// source in the chain must hold perm; the most restrictive result wins.
func (h *Host) CheckPermissionForDataDelivery(perm string, attr host.AttributionSource, message string) (host.PermissionResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := h.chainResultLocked(perm, attr)
	h.accesses = append(h.accesses, Access{
		Permission: perm,
		Caller:     attr,
		Message:    message,
		Result:     result,
	})
	return result, nil
}

// CheckPermissionForPreflight implements host.PermissionManager.
func (h *Host) CheckPermissionForPreflight(perm string, attr host.AttributionSource) (host.PermissionResult, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.chainResultLocked(perm, attr), nil
}

// CheckCallingOrSelfPermission implements host.PermissionManager.
func (h *Host) CheckCallingOrSelfPermission(perm string) host.PermissionResult {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.resultLocked(h.self.PackageName, perm)
}

// EnforceCallingOrSelfPermission implements host.PermissionManager.
func (h *Host) EnforceCallingOrSelfPermission(perm string, message string) error {
	if h.CheckCallingOrSelfPermission(perm) != host.PermissionGranted {
		return &host.SecurityError{Permission: perm, Message: message}
	}
	return nil
}

func (h *Host) chainResultLocked(perm string, attr host.AttributionSource) host.PermissionResult {
	result := host.PermissionGranted
	for src := &attr; src != nil; src = src.Next {
		if r := h.resultLocked(src.PackageName, perm); r > result {
			result = r
		}
	}
	return result
}

func (h *Host) resultLocked(pkg, perm string) host.PermissionResult {
	grants := h.packageGrants[pkg]
	if pkg == h.self.PackageName {
		grants = h.selfGrants
	}
	if r, ok := grants[perm]; ok {
		return r
	}
	return h.defaultResult
}

// Compile-time interface satisfaction checks.
var (
	_ host.Platform           = (*Host)(nil)
	_ host.LocationController = (*Host)(nil)
	_ host.PermissionManager  = (*Host)(nil)
)
