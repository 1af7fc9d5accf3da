package source

import "fmt"

// Kind classifies a Source.
type Kind uint8

const (
	KindNone Kind = iota
	KindKey
	KindMouse
	KindButton
	KindAxis
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	case KindButton:
		return "button"
	case KindAxis:
		return "axis"
	default:
		return "none"
	}
}

// DefaultAxisDeadzone is the threshold past which an axis source reads as pressed.
const DefaultAxisDeadzone = 0.5

// Source is one physical input. Only the field selected by Kind is meaningful.
type Source struct {
	Kind   Kind
	Key    Key
	Mouse  MouseButton
	Button Button
	Axis   Axis

	// Positive selects the axis direction this source reacts to.
	Positive bool
	// Deadzone is the axis magnitude below which the source is released.
	Deadzone float64
}

// FromKey returns a keyboard source.
func FromKey(k Key) Source {
	return Source{Kind: KindKey, Key: k}
}

// FromMouse returns a mouse button source.
func FromMouse(m MouseButton) Source {
	return Source{Kind: KindMouse, Mouse: m}
}

// FromButton returns a gamepad button source.
func FromButton(b Button) Source {
	return Source{Kind: KindButton, Button: b}
}

// FromAxis returns a gamepad axis source for one direction.
// A non-positive deadzone selects DefaultAxisDeadzone.
func FromAxis(a Axis, positive bool, deadzone float64) Source {
	if deadzone <= 0 {
		deadzone = DefaultAxisDeadzone
	}
	return Source{Kind: KindAxis, Axis: a, Positive: positive, Deadzone: deadzone}
}

// IsController reports whether the source lives on a gamepad.
func (s Source) IsController() bool {
	return s.Kind == KindButton || s.Kind == KindAxis
}

// Valid reports whether the source identifies a real input.
func (s Source) Valid() bool {
	switch s.Kind {
	case KindKey:
		return s.Key.Valid()
	case KindMouse:
		return s.Mouse.Valid()
	case KindButton:
		return s.Button.Valid()
	case KindAxis:
		return s.Axis.Valid()
	default:
		return false
	}
}

// Name returns the stable display name of the source.
// Axis directions are named after the stick ("LeftStickUp") so that a prompt
// asset can be found for each direction.
func (s Source) Name() string {
	switch s.Kind {
	case KindKey:
		return s.Key.String()
	case KindMouse:
		return s.Mouse.String()
	case KindButton:
		return s.Button.String()
	case KindAxis:
		return axisDisplayName(s.Axis, s.Positive)
	default:
		return "None"
	}
}

// String implements fmt.Stringer.
func (s Source) String() string {
	if s.Kind == KindAxis {
		sign := "-"
		if s.Positive {
			sign = "+"
		}
		return fmt.Sprintf("axis:%s%s", s.Axis, sign)
	}
	return fmt.Sprintf("%s:%s", s.Kind, s.Name())
}

func axisDisplayName(a Axis, positive bool) string {
	switch a {
	case AxisLeftX:
		if positive {
			return "LeftStickRight"
		}
		return "LeftStickLeft"
	case AxisLeftY:
		if positive {
			return "LeftStickDown"
		}
		return "LeftStickUp"
	case AxisRightX:
		if positive {
			return "RightStickRight"
		}
		return "RightStickLeft"
	case AxisRightY:
		if positive {
			return "RightStickDown"
		}
		return "RightStickUp"
	case AxisLeftTrigger, AxisRightTrigger:
		return a.String()
	default:
		return "None"
	}
}
