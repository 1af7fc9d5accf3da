package control

import (
	"strings"

	"github.com/dshills/bindkit/internal/binding"
)

// Action identifies a logical button.
type Action uint8

const (
	Jump Action = iota
	Dash
	Climb
	Confirm
	Cancel
	Pause

	// ActionCount is the number of actions.
	ActionCount
)

var actionNames = [ActionCount]string{
	Jump:    binding.ActionJump,
	Dash:    binding.ActionDash,
	Climb:   binding.ActionClimb,
	Confirm: binding.ActionConfirm,
	Cancel:  binding.ActionCancel,
	Pause:   binding.ActionPause,
}

// Name returns the config key of the action.
func (a Action) Name() string {
	if a < ActionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// String implements fmt.Stringer.
func (a Action) String() string {
	return a.Name()
}

// Actions returns every action in declaration order.
func Actions() []Action {
	all := make([]Action, ActionCount)
	for i := range all {
		all[i] = Action(i)
	}
	return all
}

// ParseAction parses an action name. Matching is case-insensitive.
func ParseAction(name string) (Action, bool) {
	for a := Action(0); a < ActionCount; a++ {
		if strings.EqualFold(actionNames[a], strings.TrimSpace(name)) {
			return a, true
		}
	}
	return ActionCount, false
}

// StickID identifies a logical 2-axis control.
type StickID uint8

const (
	Move StickID = iota
	Camera
	Menu

	// StickCount is the number of sticks.
	StickCount
)

var stickNames = [StickCount]string{
	Move:   binding.StickMove,
	Camera: binding.StickCamera,
	Menu:   binding.StickMenu,
}

// Name returns the config key of the stick.
func (s StickID) Name() string {
	if s < StickCount {
		return stickNames[s]
	}
	return "Unknown"
}

// String implements fmt.Stringer.
func (s StickID) String() string {
	return s.Name()
}

// Sticks returns every stick in declaration order.
func Sticks() []StickID {
	all := make([]StickID, StickCount)
	for i := range all {
		all[i] = StickID(i)
	}
	return all
}

// ParseStick parses a stick name. Matching is case-insensitive.
func ParseStick(name string) (StickID, bool) {
	for s := StickID(0); s < StickCount; s++ {
		if strings.EqualFold(stickNames[s], strings.TrimSpace(name)) {
			return s, true
		}
	}
	return StickCount, false
}

// Button is a virtual button the Coordinator binds physical sources into.
type Button interface {
	// Bind attaches one more physical binding.
	Bind(b binding.Binding)
	// Clear detaches every binding, leaving the button bound to nothing.
	Clear()
	// Consume advances the per-frame edge state.
	Consume()
}

// Stick is a virtual 2-axis control the Coordinator binds physical sources into.
type Stick interface {
	// Bind attaches the directional bindings.
	Bind(s binding.Stick)
	// Clear detaches every binding.
	Clear()
	// Consume advances the per-frame edge state.
	Consume()
}
