package config

import (
	"errors"
	"fmt"

	"github.com/dshills/bindkit/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidBinding indicates a binding entry could not be decoded.
	ErrInvalidBinding = errors.New("invalid binding")

	// ErrUnknownFormat indicates the file extension names no supported format.
	ErrUnknownFormat = loader.ErrUnknownFormat
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// FieldError describes an invalid entry in a controls document.
type FieldError struct {
	// Path locates the entry, e.g. "actions.Jump[1].source".
	Path string
	// Value is the offending value.
	Value string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s (value: %q)", e.Path, e.Message, e.Value)
}

// Is implements error matching for FieldError.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidBinding
}
