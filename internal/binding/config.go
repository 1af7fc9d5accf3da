package binding

import (
	"fmt"
	"sort"
)

// Config maps logical control names to bindings.
type Config struct {
	// Actions maps an action name to its bindings in priority order.
	Actions map[string][]Binding

	// Sticks maps a stick name to its directional bindings.
	Sticks map[string]Stick
}

// NewConfig creates an empty config.
func NewConfig() *Config {
	return &Config{
		Actions: make(map[string][]Binding),
		Sticks:  make(map[string]Stick),
	}
}

// SetAction replaces the bindings of an action.
func (c *Config) SetAction(name string, bindings ...Binding) *Config {
	if c.Actions == nil {
		c.Actions = make(map[string][]Binding)
	}
	c.Actions[name] = bindings
	return c
}

// SetStick replaces the bindings of a stick.
func (c *Config) SetStick(name string, s Stick) *Config {
	if c.Sticks == nil {
		c.Sticks = make(map[string]Stick)
	}
	c.Sticks[name] = s
	return c
}

// Action returns the bindings of an action and whether it is present.
// A nil config has no actions.
func (c *Config) Action(name string) ([]Binding, bool) {
	if c == nil {
		return nil, false
	}
	b, ok := c.Actions[name]
	return b, ok
}

// Stick returns the bindings of a stick and whether it is present.
// A nil config has no sticks.
func (c *Config) Stick(name string) (Stick, bool) {
	if c == nil {
		return Stick{}, false
	}
	s, ok := c.Sticks[name]
	return s, ok
}

// ActionNames returns the configured action names, sorted.
func (c *Config) ActionNames() []string {
	names := make([]string, 0, len(c.Actions))
	for name := range c.Actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StickNames returns the configured stick names, sorted.
func (c *Config) StickNames() []string {
	names := make([]string, 0, len(c.Sticks))
	for name := range c.Sticks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every present entry is well formed. It does not check
// completeness; missing entries fall back to the defaults at load time.
func (c *Config) Validate() error {
	for _, name := range c.ActionNames() {
		bindings := c.Actions[name]
		if len(bindings) == 0 {
			return fmt.Errorf("action %q: no bindings", name)
		}
		for i, b := range bindings {
			if err := b.Validate(); err != nil {
				return fmt.Errorf("action %q binding %d: %w", name, i, err)
			}
		}
	}
	for _, name := range c.StickNames() {
		if err := c.Sticks[name].Validate(); err != nil {
			return fmt.Errorf("stick %q: %w", name, err)
		}
	}
	return nil
}

// Clone creates a deep copy of the config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := &Config{
		Actions: make(map[string][]Binding, len(c.Actions)),
		Sticks:  make(map[string]Stick, len(c.Sticks)),
	}
	for name, bindings := range c.Actions {
		clone.Actions[name] = cloneBindings(bindings)
	}
	for name, s := range c.Sticks {
		clone.Sticks[name] = s.Clone()
	}
	return clone
}

// ResolveAction looks an action up in cfg, then in defaults. An empty
// binding list counts as absent. Either config may be nil.
func ResolveAction(cfg, defaults *Config, name string) ([]Binding, error) {
	if b, ok := cfg.Action(name); ok && len(b) > 0 {
		return b, nil
	}
	if b, ok := defaults.Action(name); ok && len(b) > 0 {
		return b, nil
	}
	return nil, &MissingBindingError{Kind: KindAction, Name: name}
}

// ResolveStick looks a stick up in cfg, then in defaults.
// Either config may be nil.
func ResolveStick(cfg, defaults *Config, name string) (Stick, error) {
	if s, ok := cfg.Stick(name); ok {
		return s, nil
	}
	if s, ok := defaults.Stick(name); ok {
		return s, nil
	}
	return Stick{}, &MissingBindingError{Kind: KindStick, Name: name}
}
