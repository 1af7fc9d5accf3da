package device

import "sync"

// Tracker is a Provider fed by connect and disconnect notifications.
// The first gamepad connected becomes primary; when it goes away the
// longest-connected remaining gamepad is promoted.
type Tracker struct {
	mu    sync.RWMutex
	order []uint32
	kinds map[uint32]Gamepad
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{kinds: make(map[uint32]Gamepad)}
}

// Add records a connected gamepad. It reports whether id became primary.
// Adding a known id updates its kind.
func (t *Tracker) Add(id uint32, g Gamepad) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.kinds[id]; !ok {
		t.order = append(t.order, id)
	}
	t.kinds[id] = g
	return t.order[0] == id
}

// Remove forgets a gamepad. It reports whether the primary slot changed.
func (t *Tracker) Remove(id uint32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.kinds[id]; !ok {
		return false
	}
	delete(t.kinds, id)
	wasPrimary := t.order[0] == id
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return wasPrimary
}

// Primary returns the id of the primary gamepad.
func (t *Tracker) Primary() (uint32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.order) == 0 {
		return 0, false
	}
	return t.order[0], true
}

// Len returns the number of connected gamepads.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// IDs returns the connected ids in connection order.
func (t *Tracker) IDs() []uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]uint32(nil), t.order...)
}

// Clear forgets every gamepad.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.order = nil
	t.kinds = make(map[uint32]Gamepad)
}

// Connected implements Provider.
func (t *Tracker) Connected() bool {
	return t.Len() > 0
}

// Gamepad implements Provider.
func (t *Tracker) Gamepad() Gamepad {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.order) == 0 {
		return GamepadNone
	}
	return t.kinds[t.order[0]]
}

var _ Provider = (*Tracker)(nil)
