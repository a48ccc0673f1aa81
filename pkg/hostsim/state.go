package hostsim

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// State is the part of a simulated host that survives restarts.
type State struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// Location holds per-user location overrides.
	Location map[int]bool `json:"location,omitempty"`
}

// Snapshot captures the host's current location overrides.
func (h *Host) Snapshot() *State {
	h.mu.RLock()
	defer h.mu.RUnlock()

	st := &State{Version: StateVersion, Location: make(map[int]bool, len(h.location))}
	for user, enabled := range h.location {
		st.Location[user] = enabled
	}
	return st
}

// Restore applies saved location overrides on top of the policy.
// A nil state is ignored.
func (h *Host) Restore(st *State) {
	if st == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for user, enabled := range st.Location {
		h.location[user] = enabled
	}
}

// StateStore persists State to a JSON file.
type StateStore struct {
	mu   sync.Mutex
	path string
}

// NewStateStore creates a state store backed by path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Save writes state to disk, replacing the file atomically.
func (s *StateStore) Save(state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Load reads the state from disk.
// Returns nil, nil if the file doesn't exist.
func (s *StateStore) Load() (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Clear removes the state file.
func (s *StateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
