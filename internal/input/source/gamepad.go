package source

import "strings"

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle

	mouseCount
)

var mouseNames = [mouseCount]string{
	MouseNone:   "None",
	MouseLeft:   "MouseLeft",
	MouseRight:  "MouseRight",
	MouseMiddle: "MouseMiddle",
}

// String returns the mouse button name.
func (m MouseButton) String() string {
	if m < mouseCount {
		return mouseNames[m]
	}
	return "Unknown"
}

// Valid reports whether m is a real mouse button.
func (m MouseButton) Valid() bool {
	return m > MouseNone && m < mouseCount
}

// ParseMouse parses a mouse button name ("MouseLeft" or "Left").
func ParseMouse(name string) (MouseButton, bool) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "mouse")
	for m := MouseNone + 1; m < mouseCount; m++ {
		if strings.ToLower(strings.TrimPrefix(mouseNames[m], "Mouse")) == s {
			return m, true
		}
	}
	return MouseNone, false
}

// Button identifies a gamepad button by its position on a standard layout.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonSouth
	ButtonEast
	ButtonWest
	ButtonNorth
	ButtonBack
	ButtonStart
	ButtonGuide
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight

	buttonCount
)

var buttonNames = [buttonCount]string{
	ButtonNone:          "None",
	ButtonSouth:         "South",
	ButtonEast:          "East",
	ButtonWest:          "West",
	ButtonNorth:         "North",
	ButtonBack:          "Back",
	ButtonStart:         "Start",
	ButtonGuide:         "Guide",
	ButtonLeftStick:     "LeftStick",
	ButtonRightStick:    "RightStick",
	ButtonLeftShoulder:  "LeftShoulder",
	ButtonRightShoulder: "RightShoulder",
	ButtonDPadUp:        "DPadUp",
	ButtonDPadDown:      "DPadDown",
	ButtonDPadLeft:      "DPadLeft",
	ButtonDPadRight:     "DPadRight",
}

// String returns the button name.
func (b Button) String() string {
	if b < buttonCount {
		return buttonNames[b]
	}
	return "Unknown"
}

// Valid reports whether b is a real button.
func (b Button) Valid() bool {
	return b > ButtonNone && b < buttonCount
}

// Buttons returns every valid button in declaration order.
func Buttons() []Button {
	buttons := make([]Button, 0, buttonCount-1)
	for b := ButtonNone + 1; b < buttonCount; b++ {
		buttons = append(buttons, b)
	}
	return buttons
}

// ParseButton parses a gamepad button name. Matching is case-insensitive.
func ParseButton(name string) (Button, bool) {
	s := strings.ToLower(strings.TrimSpace(name))
	for b := ButtonNone + 1; b < buttonCount; b++ {
		if strings.ToLower(buttonNames[b]) == s {
			return b, true
		}
	}
	return ButtonNone, false
}

// Axis identifies a gamepad axis.
// Stick Y axes grow downward; triggers range from 0 to 1.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisLeftX
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger

	axisCount
)

var axisNames = [axisCount]string{
	AxisNone:         "None",
	AxisLeftX:        "LeftX",
	AxisLeftY:        "LeftY",
	AxisRightX:       "RightX",
	AxisRightY:       "RightY",
	AxisLeftTrigger:  "LeftTrigger",
	AxisRightTrigger: "RightTrigger",
}

// String returns the axis name.
func (a Axis) String() string {
	if a < axisCount {
		return axisNames[a]
	}
	return "Unknown"
}

// Valid reports whether a is a real axis.
func (a Axis) Valid() bool {
	return a > AxisNone && a < axisCount
}

// IsTrigger reports whether a is an analog trigger.
func (a Axis) IsTrigger() bool {
	return a == AxisLeftTrigger || a == AxisRightTrigger
}

// ParseAxis parses an axis name. Matching is case-insensitive.
func ParseAxis(name string) (Axis, bool) {
	s := strings.ToLower(strings.TrimSpace(name))
	for a := AxisNone + 1; a < axisCount; a++ {
		if strings.ToLower(axisNames[a]) == s {
			return a, true
		}
	}
	return AxisNone, false
}
