package binding

import (
	"fmt"

	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/input/source"
)

// Binding represents a single physical-source-to-control mapping.
// Bindings are values; builders return modified copies.
type Binding struct {
	// Source is the physical input.
	Source source.Source

	// OnlyFor restricts the binding to one gamepad kind.
	// GamepadNone means no restriction.
	OnlyFor device.Gamepad

	// NotFor excludes the binding for one gamepad kind.
	// GamepadNone means no exclusion.
	NotFor device.Gamepad
}

// New creates a binding for the given source.
func New(src source.Source) Binding {
	return Binding{Source: src}
}

// Key creates a keyboard binding.
func Key(k source.Key) Binding {
	return New(source.FromKey(k))
}

// Mouse creates a mouse button binding.
func Mouse(m source.MouseButton) Binding {
	return New(source.FromMouse(m))
}

// Button creates a gamepad button binding.
func Button(b source.Button) Binding {
	return New(source.FromButton(b))
}

// Axis creates a gamepad axis binding for one direction.
func Axis(a source.Axis, positive bool, deadzone float64) Binding {
	return New(source.FromAxis(a, positive, deadzone))
}

// OnlyOn restricts this binding to the given gamepad kind.
func (b Binding) OnlyOn(g device.Gamepad) Binding {
	b.OnlyFor = g
	return b
}

// NotOn excludes this binding for the given gamepad kind.
func (b Binding) NotOn(g device.Gamepad) Binding {
	b.NotFor = g
	return b
}

// IsForController reports whether the physical source is a gamepad source.
func (b Binding) IsForController() bool {
	return b.Source.IsController()
}

// Name returns the stable display name of the physical source,
// used to build prompt asset paths.
func (b Binding) Name() string {
	return b.Source.Name()
}

// Restricted reports whether OnlyFor or NotFor is set.
func (b Binding) Restricted() bool {
	return b.OnlyFor != device.GamepadNone || b.NotFor != device.GamepadNone
}

// AppliesTo reports whether the binding is active while gamepad g is the
// connected controller. Restrictions only concern gamepad sources.
func (b Binding) AppliesTo(g device.Gamepad) bool {
	if !b.IsForController() {
		return true
	}
	if b.OnlyFor != device.GamepadNone && b.OnlyFor != g {
		return false
	}
	if b.NotFor != device.GamepadNone && b.NotFor == g {
		return false
	}
	return true
}

// Validate checks that the source is real and that at most one restriction
// is set.
func (b Binding) Validate() error {
	if !b.Source.Valid() {
		return fmt.Errorf("invalid source %v", b.Source)
	}
	if b.OnlyFor != device.GamepadNone && b.NotFor != device.GamepadNone {
		return fmt.Errorf("%s: only_for and not_for are mutually exclusive", b.Name())
	}
	return nil
}

// String implements fmt.Stringer.
func (b Binding) String() string {
	switch {
	case b.OnlyFor != device.GamepadNone:
		return fmt.Sprintf("%v (only %v)", b.Source, b.OnlyFor)
	case b.NotFor != device.GamepadNone:
		return fmt.Sprintf("%v (not %v)", b.Source, b.NotFor)
	default:
		return b.Source.String()
	}
}

// DefaultStickDeadzone is the radial deadzone used when a Stick has none.
const DefaultStickDeadzone = 0.35

// Stick binds the four directions of a 2-axis control.
type Stick struct {
	Deadzone float64
	Up       []Binding
	Down     []Binding
	Left     []Binding
	Right    []Binding
}

// Bindings returns every binding of the stick in Up, Down, Left, Right order.
func (s Stick) Bindings() []Binding {
	all := make([]Binding, 0, len(s.Up)+len(s.Down)+len(s.Left)+len(s.Right))
	all = append(all, s.Up...)
	all = append(all, s.Down...)
	all = append(all, s.Left...)
	all = append(all, s.Right...)
	return all
}

// Validate checks every directional binding.
func (s Stick) Validate() error {
	if s.Deadzone < 0 || s.Deadzone >= 1 {
		return fmt.Errorf("deadzone %v out of range [0, 1)", s.Deadzone)
	}
	dirs := []struct {
		name     string
		bindings []Binding
	}{
		{"up", s.Up}, {"down", s.Down}, {"left", s.Left}, {"right", s.Right},
	}
	for _, d := range dirs {
		for i, b := range d.bindings {
			if err := b.Validate(); err != nil {
				return fmt.Errorf("%s[%d]: %w", d.name, i, err)
			}
		}
	}
	return nil
}

// Clone returns a copy with independent slices.
func (s Stick) Clone() Stick {
	return Stick{
		Deadzone: s.Deadzone,
		Up:       cloneBindings(s.Up),
		Down:     cloneBindings(s.Down),
		Left:     cloneBindings(s.Left),
		Right:    cloneBindings(s.Right),
	}
}

func cloneBindings(src []Binding) []Binding {
	if src == nil {
		return nil
	}
	dst := make([]Binding, len(src))
	copy(dst, src)
	return dst
}
