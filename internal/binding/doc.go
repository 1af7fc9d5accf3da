// Package binding provides the data model that maps logical control names to
// physical input sources.
//
// # Key Concepts
//
// Binding: one physical source bound to one logical control, optionally
// restricted to (OnlyFor) or excluded from (NotFor) one gamepad kind.
//
// Stick: four directional binding lists plus a deadzone, for 2-axis controls.
//
// Config: action name → ordered bindings, stick name → Stick. List order is
// priority order for prompt display.
//
// # Resolution
//
// A user Config may be partial. ResolveAction and ResolveStick look a name up
// in the supplied Config first and in the defaults second; a name missing from
// both is a *MissingBindingError.
//
// # Usage
//
//	defaults := binding.Defaults()
//	jump, err := binding.ResolveAction(userCfg, defaults, "Jump")
//	if err != nil {
//	    // fatal configuration error
//	}
package binding
