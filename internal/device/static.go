package device

import "sync"

// Static is a Provider whose state is set by the host.
type Static struct {
	mu        sync.RWMutex
	connected bool
	gamepad   Gamepad
}

// NewStatic returns a Static provider with the given state.
func NewStatic(connected bool, g Gamepad) *Static {
	return &Static{connected: connected, gamepad: g}
}

// Set replaces the reported state.
func (s *Static) Set(connected bool, g Gamepad) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = connected
	s.gamepad = g
}

// Connected implements Provider.
func (s *Static) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// Gamepad implements Provider.
func (s *Static) Gamepad() Gamepad {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gamepad
}

var _ Provider = (*Static)(nil)
