package ebitenpad

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dshills/bindkit/internal/input/source"
)

var keyMap = map[source.Key]ebiten.Key{
	source.KeyA: ebiten.KeyA, source.KeyB: ebiten.KeyB, source.KeyC: ebiten.KeyC,
	source.KeyD: ebiten.KeyD, source.KeyE: ebiten.KeyE, source.KeyF: ebiten.KeyF,
	source.KeyG: ebiten.KeyG, source.KeyH: ebiten.KeyH, source.KeyI: ebiten.KeyI,
	source.KeyJ: ebiten.KeyJ, source.KeyK: ebiten.KeyK, source.KeyL: ebiten.KeyL,
	source.KeyM: ebiten.KeyM, source.KeyN: ebiten.KeyN, source.KeyO: ebiten.KeyO,
	source.KeyP: ebiten.KeyP, source.KeyQ: ebiten.KeyQ, source.KeyR: ebiten.KeyR,
	source.KeyS: ebiten.KeyS, source.KeyT: ebiten.KeyT, source.KeyU: ebiten.KeyU,
	source.KeyV: ebiten.KeyV, source.KeyW: ebiten.KeyW, source.KeyX: ebiten.KeyX,
	source.KeyY: ebiten.KeyY, source.KeyZ: ebiten.KeyZ,

	source.Key0: ebiten.KeyDigit0, source.Key1: ebiten.KeyDigit1, source.Key2: ebiten.KeyDigit2,
	source.Key3: ebiten.KeyDigit3, source.Key4: ebiten.KeyDigit4, source.Key5: ebiten.KeyDigit5,
	source.Key6: ebiten.KeyDigit6, source.Key7: ebiten.KeyDigit7, source.Key8: ebiten.KeyDigit8,
	source.Key9: ebiten.KeyDigit9,

	source.KeySpace:     ebiten.KeySpace,
	source.KeyEnter:     ebiten.KeyEnter,
	source.KeyEscape:    ebiten.KeyEscape,
	source.KeyTab:       ebiten.KeyTab,
	source.KeyBackspace: ebiten.KeyBackspace,

	source.KeyUp:    ebiten.KeyArrowUp,
	source.KeyDown:  ebiten.KeyArrowDown,
	source.KeyLeft:  ebiten.KeyArrowLeft,
	source.KeyRight: ebiten.KeyArrowRight,

	source.KeyLeftShift:    ebiten.KeyShiftLeft,
	source.KeyRightShift:   ebiten.KeyShiftRight,
	source.KeyLeftControl:  ebiten.KeyControlLeft,
	source.KeyRightControl: ebiten.KeyControlRight,
	source.KeyLeftAlt:      ebiten.KeyAltLeft,
	source.KeyRightAlt:     ebiten.KeyAltRight,
}

var mouseMap = map[source.MouseButton]ebiten.MouseButton{
	source.MouseLeft:   ebiten.MouseButtonLeft,
	source.MouseRight:  ebiten.MouseButtonRight,
	source.MouseMiddle: ebiten.MouseButtonMiddle,
}

// Positional buttons map onto the W3C standard layout.
var buttonMap = map[source.Button]ebiten.StandardGamepadButton{
	source.ButtonSouth:         ebiten.StandardGamepadButtonRightBottom,
	source.ButtonEast:          ebiten.StandardGamepadButtonRightRight,
	source.ButtonWest:          ebiten.StandardGamepadButtonRightLeft,
	source.ButtonNorth:         ebiten.StandardGamepadButtonRightTop,
	source.ButtonBack:          ebiten.StandardGamepadButtonCenterLeft,
	source.ButtonStart:         ebiten.StandardGamepadButtonCenterRight,
	source.ButtonGuide:         ebiten.StandardGamepadButtonCenterCenter,
	source.ButtonLeftStick:     ebiten.StandardGamepadButtonLeftStick,
	source.ButtonRightStick:    ebiten.StandardGamepadButtonRightStick,
	source.ButtonLeftShoulder:  ebiten.StandardGamepadButtonFrontTopLeft,
	source.ButtonRightShoulder: ebiten.StandardGamepadButtonFrontTopRight,
	source.ButtonDPadUp:        ebiten.StandardGamepadButtonLeftTop,
	source.ButtonDPadDown:      ebiten.StandardGamepadButtonLeftBottom,
	source.ButtonDPadLeft:      ebiten.StandardGamepadButtonLeftLeft,
	source.ButtonDPadRight:     ebiten.StandardGamepadButtonLeftRight,
}

var axisMap = map[source.Axis]ebiten.StandardGamepadAxis{
	source.AxisLeftX:  ebiten.StandardGamepadAxisLeftStickHorizontal,
	source.AxisLeftY:  ebiten.StandardGamepadAxisLeftStickVertical,
	source.AxisRightX: ebiten.StandardGamepadAxisRightStickHorizontal,
	source.AxisRightY: ebiten.StandardGamepadAxisRightStickVertical,
}

// Triggers are analog buttons on the standard layout.
var triggerMap = map[source.Axis]ebiten.StandardGamepadButton{
	source.AxisLeftTrigger:  ebiten.StandardGamepadButtonFrontBottomLeft,
	source.AxisRightTrigger: ebiten.StandardGamepadButtonFrontBottomRight,
}
