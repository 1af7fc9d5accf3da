// Package virtual implements the stateful virtual buttons and sticks that
// physical bindings are attached to.
//
// Controls sample a Poller once per frame in Update. Game logic then reads
// Down, Pressed and Released (or Value for sticks), and the frame ends with
// Consume, which rolls the pressed/released edges forward.
package virtual

import (
	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/input/source"
)

// Poller reports the raw state of physical inputs for the current frame.
type Poller interface {
	KeyDown(k source.Key) bool
	MouseDown(m source.MouseButton) bool
	ButtonDown(b source.Button) bool
	// AxisValue returns the axis position in [-1, 1]. Triggers report [0, 1].
	AxisValue(a source.Axis) float64
	// Gamepad returns the kind of the primary gamepad, or GamepadNone.
	Gamepad() device.Gamepad
}

// active reports whether b takes part in polling for the current pad.
func active(p Poller, b binding.Binding) bool {
	g := p.Gamepad()
	if g == device.GamepadNone {
		return true
	}
	return b.AppliesTo(g)
}

// amount returns how far the binding's source is actuated, in [0, 1].
func amount(p Poller, b binding.Binding) float64 {
	src := b.Source
	switch src.Kind {
	case source.KindKey:
		return digital(p.KeyDown(src.Key))
	case source.KindMouse:
		return digital(p.MouseDown(src.Mouse))
	case source.KindButton:
		return digital(p.ButtonDown(src.Button))
	case source.KindAxis:
		v := p.AxisValue(src.Axis)
		if !src.Positive {
			v = -v
		}
		return clamp01(v)
	default:
		return 0
	}
}

// held reports whether the binding's source is down, honoring axis deadzones.
func held(p Poller, b binding.Binding) bool {
	if b.Source.Kind == source.KindAxis {
		dz := b.Source.Deadzone
		if dz <= 0 {
			dz = source.DefaultAxisDeadzone
		}
		return amount(p, b) >= dz
	}
	return amount(p, b) > 0
}

func digital(down bool) float64 {
	if down {
		return 1
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
