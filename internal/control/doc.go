// Package control owns the fixed set of logical controls and drives their
// per-frame lifecycle.
//
// The logical controls are closed enumerations: six actions (Jump, Dash,
// Climb, Confirm, Cancel, Pause) and three sticks (Move, Camera, Menu). Their
// names are the keys into a binding.Config.
//
// A Coordinator is created once by the input subsystem. It attaches physical
// bindings to the virtual controls on Load, detaches them on Clear, and
// advances their edge state on Consume:
//
//	coord, err := control.NewCoordinator(buttons, sticks)
//	if err := coord.Load(userCfg); err != nil {
//	    // fatal: a control has no binding anywhere
//	}
//	for each frame {
//	    // game logic reads the virtual controls
//	    coord.Consume()
//	}
//
// The Coordinator is not safe for concurrent use. Reloads must happen between
// frames, on the thread that reads and consumes the controls.
package control
