package source

import (
	"fmt"
	"strings"
)

// Parse parses the String form of a source: "key:C", "mouse:MouseLeft",
// "button:South" or "axis:LeftX+". Axes take a trailing + or - for the
// direction; a bare axis name means positive. Axis sources get
// DefaultAxisDeadzone.
func Parse(s string) (Source, error) {
	kind, name, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Source{}, fmt.Errorf("source %q: expected kind:name", s)
	}
	name = strings.TrimSpace(name)

	switch strings.ToLower(kind) {
	case "key":
		if k, ok := ParseKey(name); ok {
			return FromKey(k), nil
		}
	case "mouse":
		if m, ok := ParseMouse(name); ok {
			return FromMouse(m), nil
		}
	case "button":
		if b, ok := ParseButton(name); ok {
			return FromButton(b), nil
		}
	case "axis":
		positive := true
		switch {
		case strings.HasSuffix(name, "+"):
			name = strings.TrimSuffix(name, "+")
		case strings.HasSuffix(name, "-"):
			name = strings.TrimSuffix(name, "-")
			positive = false
		}
		if a, ok := ParseAxis(name); ok {
			return FromAxis(a, positive, 0), nil
		}
	default:
		return Source{}, fmt.Errorf("source %q: unknown kind %q", s, kind)
	}
	return Source{}, fmt.Errorf("source %q: unknown %s %q", s, strings.ToLower(kind), name)
}
