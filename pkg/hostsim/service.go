package hostsim

import "sync/atomic"

// Service is a profile service whose availability can be switched.
type Service struct {
	name      string
	available atomic.Bool
}

// NewService creates a Service with the given availability.
func NewService(name string, available bool) *Service {
	s := &Service{name: name}
	s.available.Store(available)
	return s
}

// IsAvailable implements host.ServiceHandle.
func (s *Service) IsAvailable() bool {
	return s.available.Load()
}

// SetAvailable changes the service's availability.
func (s *Service) SetAvailable(available bool) {
	s.available.Store(available)
}

// Name returns the service name.
func (s *Service) Name() string {
	return s.name
}
