package control

import (
	"fmt"

	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/logging"
)

// Coordinator owns the logical controls and the active configuration.
type Coordinator struct {
	buttons [ActionCount]Button
	sticks  [StickCount]Stick

	defaults *binding.Config
	active   *binding.Config
	loaded   bool

	// Bindings attached by the last successful Load.
	actionBindings [ActionCount][]binding.Binding
	stickBindings  [StickCount]binding.Stick

	logger *logging.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithDefaults sets the fallback config. Defaults to binding.Defaults().
func WithDefaults(cfg *binding.Config) Option {
	return func(c *Coordinator) {
		if cfg != nil {
			c.defaults = cfg
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logging.OrNull(l).WithComponent("controls")
	}
}

// NewCoordinator creates a coordinator over the given virtual controls.
// Every slot must be non-nil.
func NewCoordinator(buttons [ActionCount]Button, sticks [StickCount]Stick, opts ...Option) (*Coordinator, error) {
	for a, b := range buttons {
		if b == nil {
			return nil, fmt.Errorf("no virtual button for %s", Action(a))
		}
	}
	for s, st := range sticks {
		if st == nil {
			return nil, fmt.Errorf("no virtual stick for %s", StickID(s))
		}
	}

	c := &Coordinator{
		buttons: buttons,
		sticks:  sticks,
		logger:  logging.NullLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.defaults == nil {
		c.defaults = binding.Defaults()
	}
	return c, nil
}

// Load clears every control, then binds each one from cfg, falling back to
// the defaults per control. cfg may be nil to use the defaults only.
//
// If any control has no binding in either tier, Load returns the
// *binding.MissingBindingError and leaves every control cleared; the active
// config is left unchanged.
func (c *Coordinator) Load(cfg *binding.Config) error {
	c.Clear()

	// Resolve everything before binding anything so that a failure leaves
	// the controls cleared rather than partially bound.
	var sticks [StickCount]binding.Stick
	for s := StickID(0); s < StickCount; s++ {
		st, err := binding.ResolveStick(cfg, c.defaults, s.Name())
		if err != nil {
			c.logger.Error("load aborted: %v", err)
			return err
		}
		sticks[s] = st
	}

	var actions [ActionCount][]binding.Binding
	for a := Action(0); a < ActionCount; a++ {
		list, err := binding.ResolveAction(cfg, c.defaults, a.Name())
		if err != nil {
			c.logger.Error("load aborted: %v", err)
			return err
		}
		if _, own := cfg.Action(a.Name()); !own {
			c.logger.Debug("%s: using default bindings", a)
		}
		actions[a] = list
	}

	for s := StickID(0); s < StickCount; s++ {
		c.sticks[s].Bind(sticks[s])
	}
	for a := Action(0); a < ActionCount; a++ {
		for _, b := range actions[a] {
			c.buttons[a].Bind(b)
		}
	}

	c.active = cfg
	c.actionBindings = actions
	c.stickBindings = sticks
	c.loaded = true
	c.logger.Debug("controls loaded")
	return nil
}

// Clear detaches the physical bindings of every control.
func (c *Coordinator) Clear() {
	for _, s := range c.sticks {
		s.Clear()
	}
	for _, b := range c.buttons {
		b.Clear()
	}
	c.actionBindings = [ActionCount][]binding.Binding{}
	c.stickBindings = [StickCount]binding.Stick{}
	c.loaded = false
}

// Consume advances every control's edge state. Call exactly once per frame,
// after game logic has read the controls.
func (c *Coordinator) Consume() {
	for _, s := range c.sticks {
		s.Consume()
	}
	for _, b := range c.buttons {
		b.Consume()
	}
}

// Loaded reports whether bindings are currently attached.
func (c *Coordinator) Loaded() bool {
	return c.loaded
}

// Config returns the config passed to the last successful Load.
// nil means the defaults are in effect.
func (c *Coordinator) Config() *binding.Config {
	return c.active
}

// Defaults returns the fallback config.
func (c *Coordinator) Defaults() *binding.Config {
	return c.defaults
}

// Bindings returns the bindings attached to an action, in priority order.
// It is empty while nothing is loaded.
func (c *Coordinator) Bindings(a Action) []binding.Binding {
	if a >= ActionCount {
		return nil
	}
	return c.actionBindings[a]
}

// StickBindings returns the bindings attached to a stick.
func (c *Coordinator) StickBindings(s StickID) binding.Stick {
	if s >= StickCount {
		return binding.Stick{}
	}
	return c.stickBindings[s]
}

// Button returns the virtual button of an action.
func (c *Coordinator) Button(a Action) Button {
	if a >= ActionCount {
		return nil
	}
	return c.buttons[a]
}

// Stick returns the virtual stick of a stick control.
func (c *Coordinator) Stick(s StickID) Stick {
	if s >= StickCount {
		return nil
	}
	return c.sticks[s]
}
