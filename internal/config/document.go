package config

import (
	"fmt"
	"sort"

	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/input/source"
)

// Document is the persisted form of a binding.Config.
type Document struct {
	Actions map[string][]BindingDoc `toml:"actions,omitempty" yaml:"actions,omitempty" json:"actions,omitempty"`
	Sticks  map[string]StickDoc     `toml:"sticks,omitempty" yaml:"sticks,omitempty" json:"sticks,omitempty"`
}

// BindingDoc is the persisted form of a binding.Binding.
type BindingDoc struct {
	// Source is the source in kind:name form, e.g. "key:C" or "axis:LeftX-".
	Source string `toml:"source" yaml:"source" json:"source"`
	// Deadzone applies to axis sources only.
	Deadzone float64 `toml:"deadzone,omitempty" yaml:"deadzone,omitempty" json:"deadzone,omitempty"`
	OnlyFor  string  `toml:"only_for,omitempty" yaml:"only_for,omitempty" json:"only_for,omitempty"`
	NotFor   string  `toml:"not_for,omitempty" yaml:"not_for,omitempty" json:"not_for,omitempty"`
}

// StickDoc is the persisted form of a binding.Stick.
type StickDoc struct {
	Deadzone float64      `toml:"deadzone" yaml:"deadzone" json:"deadzone"`
	Up       []BindingDoc `toml:"up" yaml:"up" json:"up"`
	Down     []BindingDoc `toml:"down" yaml:"down" json:"down"`
	Left     []BindingDoc `toml:"left" yaml:"left" json:"left"`
	Right    []BindingDoc `toml:"right" yaml:"right" json:"right"`
}

// Encode converts a config into its persisted form.
func Encode(cfg *binding.Config) Document {
	doc := Document{
		Actions: make(map[string][]BindingDoc),
		Sticks:  make(map[string]StickDoc),
	}
	if cfg == nil {
		return doc
	}
	for name, list := range cfg.Actions {
		doc.Actions[name] = encodeList(list)
	}
	for name, s := range cfg.Sticks {
		doc.Sticks[name] = StickDoc{
			Deadzone: s.Deadzone,
			Up:       encodeList(s.Up),
			Down:     encodeList(s.Down),
			Left:     encodeList(s.Left),
			Right:    encodeList(s.Right),
		}
	}
	return doc
}

func encodeList(list []binding.Binding) []BindingDoc {
	out := make([]BindingDoc, 0, len(list))
	for _, b := range list {
		out = append(out, encodeBinding(b))
	}
	return out
}

func encodeBinding(b binding.Binding) BindingDoc {
	d := BindingDoc{Source: b.Source.String()}
	if b.Source.Kind == source.KindAxis {
		d.Deadzone = b.Source.Deadzone
	}
	if b.OnlyFor != device.GamepadNone {
		d.OnlyFor = b.OnlyFor.String()
	}
	if b.NotFor != device.GamepadNone {
		d.NotFor = b.NotFor.String()
	}
	return d
}

// Decode converts a persisted document into a validated config.
// Entries are checked in name order so the first error is stable.
func Decode(doc Document) (*binding.Config, error) {
	cfg := binding.NewConfig()

	for _, name := range sortedKeys(doc.Actions) {
		list, err := decodeList(fmt.Sprintf("actions.%s", name), doc.Actions[name])
		if err != nil {
			return nil, err
		}
		cfg.SetAction(name, list...)
	}

	for _, name := range sortedKeys(doc.Sticks) {
		sd := doc.Sticks[name]
		path := fmt.Sprintf("sticks.%s", name)
		s := binding.Stick{Deadzone: sd.Deadzone}
		var err error
		if s.Up, err = decodeList(path+".up", sd.Up); err != nil {
			return nil, err
		}
		if s.Down, err = decodeList(path+".down", sd.Down); err != nil {
			return nil, err
		}
		if s.Left, err = decodeList(path+".left", sd.Left); err != nil {
			return nil, err
		}
		if s.Right, err = decodeList(path+".right", sd.Right); err != nil {
			return nil, err
		}
		cfg.SetStick(name, s)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBinding, err)
	}
	return cfg, nil
}

func decodeList(path string, docs []BindingDoc) ([]binding.Binding, error) {
	out := make([]binding.Binding, 0, len(docs))
	for i, d := range docs {
		b, err := decodeBinding(fmt.Sprintf("%s[%d]", path, i), d)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func decodeBinding(path string, d BindingDoc) (binding.Binding, error) {
	src, err := source.Parse(d.Source)
	if err != nil {
		return binding.Binding{}, &FieldError{Path: path + ".source", Value: d.Source, Message: "unknown source"}
	}
	if d.Deadzone != 0 {
		if src.Kind != source.KindAxis {
			return binding.Binding{}, &FieldError{Path: path + ".deadzone", Message: "deadzone only applies to axis sources"}
		}
		if d.Deadzone < 0 || d.Deadzone >= 1 {
			return binding.Binding{}, &FieldError{Path: path + ".deadzone", Value: fmt.Sprint(d.Deadzone), Message: "must be in [0, 1)"}
		}
		src.Deadzone = d.Deadzone
	}

	b := binding.New(src)
	if d.OnlyFor != "" {
		g, ok := device.ParseGamepad(d.OnlyFor)
		if !ok {
			return binding.Binding{}, &FieldError{Path: path + ".only_for", Value: d.OnlyFor, Message: "unknown gamepad"}
		}
		b = b.OnlyOn(g)
	}
	if d.NotFor != "" {
		g, ok := device.ParseGamepad(d.NotFor)
		if !ok {
			return binding.Binding{}, &FieldError{Path: path + ".not_for", Value: d.NotFor, Message: "unknown gamepad"}
		}
		b = b.NotOn(g)
	}
	if err := b.Validate(); err != nil {
		return binding.Binding{}, &FieldError{Path: path, Message: err.Error()}
	}
	return b, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
