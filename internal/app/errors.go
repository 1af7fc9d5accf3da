// Package app wires the input subsystem together: virtual controls, the
// binding coordinator, the prompt resolver and optional live reload of the
// controls file.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrShutdown indicates the application has already been shut down.
	ErrShutdown = errors.New("application shut down")

	// ErrInitialization indicates an initialization failure.
	ErrInitialization = errors.New("initialization failed")
)

// InitError represents an error during component initialization.
type InitError struct {
	Component string
	Err       error
}

// Error implements the error interface.
func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInitialization.
func (e *InitError) Is(target error) bool {
	return target == ErrInitialization
}
