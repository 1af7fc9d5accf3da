// Package loader reads and writes control configuration files.
//
// The format is chosen by file extension: .toml, .yaml/.yml or .json.
// Decoding is strict: unknown keys are reported as errors so a typo in a
// controls file does not silently fall back to a default binding.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format is a configuration file format.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatYAML
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat indicates a path whose extension names no supported format.
var ErrUnknownFormat = errors.New("unknown config format")

// FormatFor returns the format of path by extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// Loader decodes configuration files into Go values.
type Loader struct {
	fs FileSystem
}

// New creates a loader on the OS file system.
func New() *Loader {
	return &Loader{fs: DefaultFS()}
}

// NewWithFS creates a loader on a custom file system.
func NewWithFS(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// LoadFrom decodes the file at path into v. It returns false, nil if the
// file doesn't exist.
func (l *Loader) LoadFrom(path string, v any) (bool, error) {
	format, err := FormatFor(path)
	if err != nil {
		return false, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil // File doesn't exist, not an error
		}
		return false, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := Decode(format, path, data, v); err != nil {
		return false, err
	}
	return true, nil
}

// LoadFromReader decodes a document in the given format from r into v.
func LoadFromReader(r io.Reader, format Format, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return Decode(format, "<reader>", data, v)
}

// Decode decodes data into v. source names the input in errors.
func Decode(format Format, source string, data []byte, v any) error {
	switch format {
	case FormatTOML:
		return decodeTOML(source, data, v)
	case FormatYAML:
		return decodeYAML(source, data, v)
	case FormatJSON:
		return decodeJSON(source, data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatTOML:
		return encodeTOML(w, v)
	case FormatYAML:
		return encodeYAML(w, v)
	case FormatJSON:
		return encodeJSON(w, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Marshal returns v encoded in the given format.
func Marshal(format Format, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
