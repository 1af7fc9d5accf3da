package virtual

import (
	"math"
	"time"

	"github.com/dshills/bindkit/internal/binding"
)

// OverlapPolicy decides the axis value when both directions of an axis are
// held by digital sources.
type OverlapPolicy uint8

const (
	// TakeNewer uses the direction pressed most recently.
	TakeNewer OverlapPolicy = iota
	// TakeOlder keeps the direction that was held first.
	TakeOlder
	// CancelOut reads zero.
	CancelOut
)

// Direction is one of the four stick directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	directionCount
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Stick is a virtual 2-axis control. Positive Y points down.
type Stick struct {
	name     string
	base     float64
	deadzone float64
	overlap  OverlapPolicy

	bindings [directionCount][]binding.Binding

	x, y      float64
	dirs      [directionCount]edges
	downSince [directionCount]time.Time
}

// NewStick creates a stick. A deadzone outside [0, 1) selects
// binding.DefaultStickDeadzone.
func NewStick(name string, deadzone float64, overlap OverlapPolicy) *Stick {
	if deadzone < 0 || deadzone >= 1 {
		deadzone = binding.DefaultStickDeadzone
	}
	return &Stick{name: name, base: deadzone, deadzone: deadzone, overlap: overlap}
}

// Name returns the stick name.
func (s *Stick) Name() string {
	return s.name
}

// Deadzone returns the radial deadzone in effect.
func (s *Stick) Deadzone() float64 {
	return s.deadzone
}

// Bind attaches directional bindings. A deadzone in (0, 1) in bs overrides
// the one the stick was created with; otherwise that one applies.
func (s *Stick) Bind(bs binding.Stick) {
	s.deadzone = s.base
	if bs.Deadzone > 0 && bs.Deadzone < 1 {
		s.deadzone = bs.Deadzone
	}
	s.bindings[Up] = append(s.bindings[Up], bs.Up...)
	s.bindings[Down] = append(s.bindings[Down], bs.Down...)
	s.bindings[Left] = append(s.bindings[Left], bs.Left...)
	s.bindings[Right] = append(s.bindings[Right], bs.Right...)
}

// Clear detaches every binding, restores the deadzone the stick was created
// with and drops pending edges. Held directions are kept until the next
// Update so that rebinding does not raise new presses.
func (s *Stick) Clear() {
	s.bindings = [directionCount][]binding.Binding{}
	s.deadzone = s.base
	for d := range s.dirs {
		s.dirs[d].clear()
	}
}

// Update samples the bindings for the frame starting at now.
func (s *Stick) Update(p Poller, now time.Time) {
	var amt [directionCount]float64
	for d := Direction(0); d < directionCount; d++ {
		for _, b := range s.bindings[d] {
			if active(p, b) {
				amt[d] = math.Max(amt[d], amount(p, b))
			}
		}
		if amt[d] > 0 && s.downSince[d].IsZero() {
			s.downSince[d] = now
		} else if amt[d] == 0 {
			s.downSince[d] = time.Time{}
		}
	}

	x := s.resolve(amt[Left], amt[Right], Left, Right)
	y := s.resolve(amt[Up], amt[Down], Up, Down)
	switch m := math.Hypot(x, y); {
	case m < s.deadzone:
		x, y = 0, 0
	case m > 1:
		x, y = x/m, y/m
	}
	s.x, s.y = x, y

	s.dirs[Up].set(y < 0)
	s.dirs[Down].set(y > 0)
	s.dirs[Left].set(x < 0)
	s.dirs[Right].set(x > 0)
}

// resolve returns pos-neg for one axis, applying the overlap policy when
// both directions are held.
func (s *Stick) resolve(neg, pos float64, negDir, posDir Direction) float64 {
	if neg == 0 || pos == 0 {
		return pos - neg
	}
	switch s.overlap {
	case TakeNewer:
		if s.downSince[posDir].After(s.downSince[negDir]) {
			return pos
		}
		if s.downSince[negDir].After(s.downSince[posDir]) {
			return -neg
		}
		return 0
	case TakeOlder:
		if s.downSince[posDir].Before(s.downSince[negDir]) {
			return pos
		}
		if s.downSince[negDir].Before(s.downSince[posDir]) {
			return -neg
		}
		return 0
	default:
		return 0
	}
}

// Consume clears the per-direction edges.
func (s *Stick) Consume() {
	for d := range s.dirs {
		s.dirs[d].clear()
	}
}

// Value returns the stick position. Both components are in [-1, 1].
func (s *Stick) Value() (x, y float64) {
	return s.x, s.y
}

// Held reports whether the stick points in direction d.
func (s *Stick) Held(d Direction) bool {
	return d < directionCount && s.dirs[d].down
}

// Pressed reports whether the stick started pointing in direction d this
// frame.
func (s *Stick) Pressed(d Direction) bool {
	return d < directionCount && s.dirs[d].pressed
}

// Released reports whether the stick stopped pointing in direction d this
// frame.
func (s *Stick) Released(d Direction) bool {
	return d < directionCount && s.dirs[d].released
}
