package binding

import (
	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/input/source"
)

// Names of the built-in controls. They are the join keys between a Config
// and the logical controls.
const (
	ActionJump    = "Jump"
	ActionDash    = "Dash"
	ActionClimb   = "Climb"
	ActionConfirm = "Confirm"
	ActionCancel  = "Cancel"
	ActionPause   = "Pause"

	StickMove   = "Move"
	StickCamera = "Camera"
	StickMenu   = "Menu"
)

// triggerDeadzone is the pull past which a trigger counts as pressed.
const triggerDeadzone = 0.4

// Defaults returns the built-in default config. Each call returns a fresh
// copy, so callers may modify the result.
func Defaults() *Config {
	cfg := NewConfig()

	cfg.SetStick(StickMove, directionalStick())
	cfg.SetStick(StickMenu, directionalStick())
	cfg.SetStick(StickCamera, Stick{
		Deadzone: DefaultStickDeadzone,
		Up:       []Binding{Key(source.KeyW), Axis(source.AxisRightY, false, 0)},
		Down:     []Binding{Key(source.KeyS), Axis(source.AxisRightY, true, 0)},
		Left:     []Binding{Key(source.KeyA), Axis(source.AxisRightX, false, 0)},
		Right:    []Binding{Key(source.KeyD), Axis(source.AxisRightX, true, 0)},
	})

	// Switch controllers report the confirm button on the East position.
	cfg.SetAction(ActionJump,
		Key(source.KeyC),
		Button(source.ButtonSouth).NotOn(device.GamepadNintendo),
		Button(source.ButtonEast).OnlyOn(device.GamepadNintendo),
	)
	cfg.SetAction(ActionDash,
		Key(source.KeyX),
		Button(source.ButtonWest).NotOn(device.GamepadNintendo),
		Button(source.ButtonNorth).OnlyOn(device.GamepadNintendo),
	)
	cfg.SetAction(ActionClimb,
		Key(source.KeyZ),
		Key(source.KeyV),
		Button(source.ButtonLeftShoulder),
		Button(source.ButtonRightShoulder),
		Axis(source.AxisLeftTrigger, true, triggerDeadzone),
		Axis(source.AxisRightTrigger, true, triggerDeadzone),
	)
	cfg.SetAction(ActionConfirm,
		Key(source.KeyC),
		Key(source.KeyEnter),
		Button(source.ButtonSouth).NotOn(device.GamepadNintendo),
		Button(source.ButtonEast).OnlyOn(device.GamepadNintendo),
	)
	cfg.SetAction(ActionCancel,
		Key(source.KeyX),
		Key(source.KeyBackspace),
		Button(source.ButtonEast).NotOn(device.GamepadNintendo),
		Button(source.ButtonSouth).OnlyOn(device.GamepadNintendo),
	)
	cfg.SetAction(ActionPause,
		Key(source.KeyEnter),
		Key(source.KeyEscape),
		Button(source.ButtonStart),
		Button(source.ButtonBack),
	)

	return cfg
}

// directionalStick binds arrows, d-pad and the left stick.
func directionalStick() Stick {
	return Stick{
		Deadzone: DefaultStickDeadzone,
		Up:       []Binding{Key(source.KeyUp), Button(source.ButtonDPadUp), Axis(source.AxisLeftY, false, 0)},
		Down:     []Binding{Key(source.KeyDown), Button(source.ButtonDPadDown), Axis(source.AxisLeftY, true, 0)},
		Left:     []Binding{Key(source.KeyLeft), Button(source.ButtonDPadLeft), Axis(source.AxisLeftX, false, 0)},
		Right:    []Binding{Key(source.KeyRight), Button(source.ButtonDPadRight), Axis(source.AxisLeftX, true, 0)},
	}
}
