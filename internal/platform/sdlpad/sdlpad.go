// Package sdlpad reports the primary gamepad using SDL3 joysticks.
//
// It only answers which controller is connected and what kind it is; button
// state comes from the frame backend. Open, Poll and Close must be called
// from the thread that owns the SDL event loop, usually the main thread.
package sdlpad

import (
	"fmt"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/logging"
)

type joystickInfo struct {
	joystick *sdl.Joystick
	name     string
	kind     device.Gamepad
}

// Provider implements device.Provider on SDL3.
type Provider struct {
	*device.Tracker

	joysticks map[sdl.JoystickID]*joystickInfo
	open      bool
	logger    *logging.Logger
}

// New creates a provider. Call Open before Poll.
func New(logger *logging.Logger) *Provider {
	return &Provider{
		Tracker:   device.NewTracker(),
		joysticks: make(map[sdl.JoystickID]*joystickInfo),
		logger:    logging.OrNull(logger).WithComponent("sdlpad"),
	}
}

// Open initializes the SDL joystick subsystem and picks up already
// connected joysticks.
func (p *Provider) Open() error {
	if p.open {
		return nil
	}
	if !sdl.Init(sdl.InitJoystick) {
		return fmt.Errorf("SDL init failed: %s", sdl.GetError())
	}
	p.open = true
	p.logger.Debug("SDL3 joystick subsystem initialized")

	for _, id := range sdl.GetJoysticks() {
		p.openJoystick(id)
	}
	return nil
}

// Poll drains pending connect and disconnect events. Call once per frame.
func (p *Provider) Poll() {
	if !p.open {
		return
	}
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			p.openJoystick(event.JDevice().Which)
		case sdl.EventJoystickRemoved:
			p.removeJoystick(event.JDevice().Which)
		}
	}
}

// Close releases every joystick and shuts SDL down. It is safe to call more
// than once.
func (p *Provider) Close() {
	if !p.open {
		return
	}
	for id, info := range p.joysticks {
		sdl.CloseJoystick(info.joystick)
		delete(p.joysticks, id)
	}
	p.Tracker.Clear()
	sdl.Quit()
	p.open = false
}

func (p *Provider) openJoystick(instanceID sdl.JoystickID) {
	if _, exists := p.joysticks[instanceID]; exists {
		return
	}

	js := sdl.OpenJoystick(instanceID)
	if js == nil {
		p.logger.Warn("failed to open joystick %d: %s", instanceID, sdl.GetError())
		return
	}

	id := sdl.GetJoystickID(js)
	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	name := sdl.GetJoystickName(js)

	kind := device.Classify(vendorID, productID)
	if kind == device.GamepadOther {
		kind = device.ClassifyName(name)
	}

	p.joysticks[id] = &joystickInfo{joystick: js, name: name, kind: kind}
	primary := p.Tracker.Add(uint32(id), kind)

	p.logger.Info("joystick connected: %s (VID=%04X PID=%04X) kind=%s primary=%v",
		name, vendorID, productID, kind, primary)
}

func (p *Provider) removeJoystick(instanceID sdl.JoystickID) {
	info, exists := p.joysticks[instanceID]
	if !exists {
		return
	}

	p.logger.Info("joystick disconnected: %s", info.name)
	sdl.CloseJoystick(info.joystick)
	delete(p.joysticks, instanceID)

	if p.Tracker.Remove(uint32(instanceID)) {
		if id, ok := p.Tracker.Primary(); ok {
			if next, ok := p.joysticks[sdl.JoystickID(id)]; ok {
				p.logger.Info("primary joystick switched to: %s", next.name)
			}
		}
	}
}

var _ device.Provider = (*Provider)(nil)
