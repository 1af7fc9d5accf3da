// Package ebitenpad reads keyboard, mouse and gamepad state from ebiten.
//
// Gamepads are read through ebiten's standard layout, so positional buttons
// mean the same thing on every controller with a known mapping. Call Update
// once per frame from the game's Update before sampling the virtual controls.
package ebitenpad

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/input/source"
	"github.com/dshills/bindkit/internal/logging"
)

// Pad implements virtual.Poller and device.Provider on ebiten. The primary
// gamepad is the first connected one with a standard layout.
type Pad struct {
	ids     []ebiten.GamepadID
	primary ebiten.GamepadID
	present bool
	kind    device.Gamepad
	logger  *logging.Logger
}

// New creates a Pad.
func New(logger *logging.Logger) *Pad {
	return &Pad{logger: logging.OrNull(logger).WithComponent("ebitenpad")}
}

// Update refreshes the primary gamepad.
func (p *Pad) Update() {
	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		p.logger.Info("gamepad connected: %s (%s)", ebiten.GamepadName(id), ebiten.GamepadSDLID(id))
	}

	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	for _, id := range p.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if !p.present || id != p.primary {
			p.kind = device.ClassifyGUID(ebiten.GamepadSDLID(id), ebiten.GamepadName(id))
			p.logger.Debug("primary gamepad %d is %s", id, p.kind)
		}
		p.primary, p.present = id, true
		return
	}
	if p.present {
		p.logger.Info("gamepad disconnected")
	}
	p.present = false
	p.kind = device.GamepadNone
}

// Connected implements device.Provider.
func (p *Pad) Connected() bool {
	return p.present
}

// Gamepad implements device.Provider and virtual.Poller.
func (p *Pad) Gamepad() device.Gamepad {
	if !p.present {
		return device.GamepadNone
	}
	return p.kind
}

// KeyDown implements virtual.Poller.
func (p *Pad) KeyDown(k source.Key) bool {
	ek, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// MouseDown implements virtual.Poller.
func (p *Pad) MouseDown(m source.MouseButton) bool {
	em, ok := mouseMap[m]
	return ok && ebiten.IsMouseButtonPressed(em)
}

// ButtonDown implements virtual.Poller.
func (p *Pad) ButtonDown(b source.Button) bool {
	if !p.present {
		return false
	}
	eb, ok := buttonMap[b]
	return ok && ebiten.IsStandardGamepadButtonPressed(p.primary, eb)
}

// AxisValue implements virtual.Poller.
func (p *Pad) AxisValue(a source.Axis) float64 {
	if !p.present {
		return 0
	}
	if eb, ok := triggerMap[a]; ok {
		return ebiten.StandardGamepadButtonValue(p.primary, eb)
	}
	if ea, ok := axisMap[a]; ok {
		return ebiten.StandardGamepadAxisValue(p.primary, ea)
	}
	return 0
}
