// Package config persists control bindings and reloads them at runtime.
//
// A controls file holds only the controls the user changed; everything else
// falls back to the built-in defaults when the file is loaded into a
// control.Coordinator. TOML is the primary format:
//
//	# ~/.config/bindkit/controls.toml
//	[[actions.Jump]]
//	source = "key:Space"
//
//	[[actions.Jump]]
//	source = "button:South"
//	not_for = "Nintendo"
//
//	[sticks.Move]
//	deadzone = 0.3
//	up = [{ source = "key:W" }, { source = "axis:LeftY-" }]
//
// YAML (.yaml, .yml) and JSON (.json) files use the same structure.
//
// # Live reload
//
// A Watcher marks the file dirty when it changes on disk. The frame loop
// calls Reloader.ApplyPending between frames, so bindings are never swapped
// while game logic is reading controls.
//
// # Error Handling
//
//   - loader.ParseError: the file is not well-formed, with line and column
//   - FieldError: a binding entry names an unknown source or device
//   - ErrUnknownFormat: the file extension names no supported format
package config
