package virtual

import (
	"time"

	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/control"
)

// Press buffers of the standard controls.
const (
	JumpBuffer = 100 * time.Millisecond
	DashBuffer = 100 * time.Millisecond
)

// Set holds one virtual control per logical control.
type Set struct {
	buttons [control.ActionCount]*Button
	sticks  [control.StickCount]*Stick
}

// NewSet creates the standard controls. Jump and Dash buffer presses; every
// stick uses binding.DefaultStickDeadzone and TakeNewer.
func NewSet() *Set {
	s := &Set{}
	for _, a := range control.Actions() {
		var buffer time.Duration
		switch a {
		case control.Jump:
			buffer = JumpBuffer
		case control.Dash:
			buffer = DashBuffer
		}
		s.buttons[a] = NewButton(a.Name(), buffer)
	}
	for _, id := range control.Sticks() {
		s.sticks[id] = NewStick(id.Name(), binding.DefaultStickDeadzone, TakeNewer)
	}
	return s
}

// Controls returns the tables a control.Coordinator is built from.
func (s *Set) Controls() ([control.ActionCount]control.Button, [control.StickCount]control.Stick) {
	var buttons [control.ActionCount]control.Button
	var sticks [control.StickCount]control.Stick
	for i, b := range s.buttons {
		buttons[i] = b
	}
	for i, st := range s.sticks {
		sticks[i] = st
	}
	return buttons, sticks
}

// Button returns the virtual button of an action.
func (s *Set) Button(a control.Action) *Button {
	if a >= control.ActionCount {
		return nil
	}
	return s.buttons[a]
}

// Stick returns the virtual stick of a stick control.
func (s *Set) Stick(id control.StickID) *Stick {
	if id >= control.StickCount {
		return nil
	}
	return s.sticks[id]
}

// Update samples every control.
func (s *Set) Update(p Poller, now time.Time) {
	for _, st := range s.sticks {
		st.Update(p, now)
	}
	for _, b := range s.buttons {
		b.Update(p, now)
	}
}
