// Package device classifies connected input hardware into prompt families.
//
// A Gamepad is what the connectivity layer reports for the primary controller
// slot. A Family is what the prompt layer displays: every family owns exactly
// one asset namespace, and anything that is not a recognized gamepad brand is
// shown with Xbox-style prompts.
package device

import "strings"

// Gamepad is the kind of controller reported by a Provider.
// GamepadNone is the zero value and means "unset"; it is what a binding
// carries when it has no device restriction.
type Gamepad uint8

const (
	GamepadNone Gamepad = iota
	GamepadOther
	GamepadXbox
	GamepadDualShock4
	GamepadDualSense
	GamepadNintendo
)

// String returns the gamepad kind name.
func (g Gamepad) String() string {
	switch g {
	case GamepadOther:
		return "Other"
	case GamepadXbox:
		return "Xbox"
	case GamepadDualShock4:
		return "DualShock4"
	case GamepadDualSense:
		return "DualSense"
	case GamepadNintendo:
		return "Nintendo"
	default:
		return "None"
	}
}

// ParseGamepad parses a gamepad kind name. Matching is case-insensitive.
func ParseGamepad(name string) (Gamepad, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "other":
		return GamepadOther, true
	case "xbox":
		return GamepadXbox, true
	case "dualshock4", "ps4":
		return GamepadDualShock4, true
	case "dualsense", "ps5":
		return GamepadDualSense, true
	case "nintendo", "switch":
		return GamepadNintendo, true
	default:
		return GamepadNone, false
	}
}

// Family is a prompt family: one set of icons.
type Family uint8

const (
	FamilyPC Family = iota
	FamilyXbox
	FamilyDualShock4
	FamilyDualSense
	FamilyNintendo

	familyCount
)

var namespaces = [familyCount]string{
	FamilyPC:         "PC",
	FamilyXbox:       "Xbox Series",
	FamilyDualShock4: "PlayStation 4",
	FamilyDualSense:  "PlayStation 5",
	FamilyNintendo:   "Nintendo Switch",
}

// Namespace returns the prompt asset namespace of the family.
func (f Family) Namespace() string {
	if f < familyCount {
		return namespaces[f]
	}
	return namespaces[FamilyXbox]
}

// String returns the namespace.
func (f Family) String() string {
	return f.Namespace()
}

// Families returns every family in declaration order.
func Families() []Family {
	return []Family{FamilyPC, FamilyXbox, FamilyDualShock4, FamilyDualSense, FamilyNintendo}
}

// ParseFamily parses a namespace ("PlayStation 5") or a gamepad kind name.
func ParseFamily(name string) (Family, bool) {
	s := strings.TrimSpace(name)
	for f := FamilyPC; f < familyCount; f++ {
		if strings.EqualFold(namespaces[f], s) {
			return f, true
		}
	}
	if strings.EqualFold(s, "pc") || strings.EqualFold(s, "keyboard") {
		return FamilyPC, true
	}
	if g, ok := ParseGamepad(s); ok {
		return FamilyOf(g), true
	}
	return FamilyPC, false
}

// FamilyOf maps a connected gamepad kind to its prompt family.
// Unknown kinds use Xbox-style prompts.
func FamilyOf(g Gamepad) Family {
	switch g {
	case GamepadDualShock4:
		return FamilyDualShock4
	case GamepadDualSense:
		return FamilyDualSense
	case GamepadNintendo:
		return FamilyNintendo
	default:
		return FamilyXbox
	}
}

// Provider reports the state of the primary controller slot.
type Provider interface {
	// Connected reports whether a gamepad occupies the primary slot.
	Connected() bool
	// Gamepad returns the kind of the primary gamepad.
	// The result is meaningless while disconnected.
	Gamepad() Gamepad
}

// Current returns the family to display prompts for: the primary gamepad's
// family while one is connected, PC otherwise. A nil provider means PC.
func Current(p Provider) Family {
	if p == nil || !p.Connected() {
		return FamilyPC
	}
	return FamilyOf(p.Gamepad())
}
