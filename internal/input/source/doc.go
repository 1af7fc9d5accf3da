// Package source describes the physical input sources a logical control can
// be bound to.
//
// A Source identifies exactly one of:
//
//   - a keyboard key ("C", "Space", "Enter", "Up")
//   - a mouse button ("MouseLeft")
//   - a gamepad button, named by position ("South", "East", "DPadUp")
//   - one direction of a gamepad axis ("LeftX" positive, "LeftTrigger")
//
// Gamepad buttons are positional so that the same Source means the same
// physical button on every controller family; the prompt layer turns the
// position into a family-specific glyph ("South" is A on Xbox, Cross on
// PlayStation, B on Switch).
//
// Name returns the stable display name used to build prompt asset paths.
package source
