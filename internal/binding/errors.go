package binding

import (
	"errors"
	"fmt"
)

// ErrMissingBinding indicates a control has no binding in either the supplied
// or the default config.
var ErrMissingBinding = errors.New("missing binding")

// ControlKind names what a MissingBindingError refers to.
type ControlKind string

const (
	KindAction ControlKind = "Action"
	KindStick  ControlKind = "Stick"
)

// MissingBindingError names the control that could not be resolved.
type MissingBindingError struct {
	Kind ControlKind
	Name string
}

// Error implements the error interface.
func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("missing %s binding for '%s'", e.Kind, e.Name)
}

// Is implements error matching against ErrMissingBinding.
func (e *MissingBindingError) Is(target error) bool {
	return target == ErrMissingBinding
}
