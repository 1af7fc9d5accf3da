package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/config/loader"
)

// EnvPrefix prefixes every environment variable read by this package.
const EnvPrefix = "BINDKIT_"

// DefaultFileName is the controls file name inside the user config directory.
const DefaultFileName = "controls.toml"

// Load reads the controls file at path. A missing file is not an error: it
// returns nil, which selects the defaults for every control.
func Load(path string) (*binding.Config, error) {
	return LoadFS(loader.DefaultFS(), path)
}

// LoadFS is Load on a custom file system.
func LoadFS(fsys loader.FileSystem, path string) (*binding.Config, error) {
	var doc Document
	found, err := loader.NewWithFS(fsys).LoadFrom(path, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	cfg, err := Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadReader reads a controls document in the named format ("toml", "yaml"
// or "json").
func LoadReader(r io.Reader, format string) (*binding.Config, error) {
	f, err := loader.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := loader.LoadFromReader(r, f, &doc); err != nil {
		return nil, err
	}
	return Decode(doc)
}

// Write encodes cfg to w in the named format.
func Write(w io.Writer, format string, cfg *binding.Config) error {
	f, err := loader.ParseFormat(format)
	if err != nil {
		return err
	}
	return loader.Encode(w, f, Encode(cfg))
}

// Save writes cfg to path, choosing the format by extension. The file is
// replaced atomically.
func Save(path string, cfg *binding.Config) error {
	f, err := loader.FormatFor(path)
	if err != nil {
		return err
	}
	data, err := loader.Marshal(f, Encode(cfg))
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".controls-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}

// ConfigPath returns the controls file to use. An explicit flag value wins,
// then BINDKIT_CONTROLS, then controls.toml in the user config directory.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p, ok := loader.NewEnvLoader(EnvPrefix).Lookup(loader.SettingControls); ok {
		return p
	}
	return filepath.Join(UserConfigDir(), DefaultFileName)
}

// UserConfigDir returns the bindkit directory under the user config root.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bindkit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bindkit")
}

// LogLevel returns the log level to use: the flag value, then
// BINDKIT_LOG_LEVEL, then fallback.
func LogLevel(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	return loader.GetEnvOrDefault(EnvPrefix+"LOG_LEVEL", fallback)
}

// AssetsDir returns the prompt icon directory: the flag value, then
// BINDKIT_ASSETS. Empty means no icons.
func AssetsDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	dir, _ := loader.NewEnvLoader(EnvPrefix).Lookup(loader.SettingAssets)
	return dir
}

// Watch reports whether live reload is enabled by the flag or by
// BINDKIT_WATCH.
func Watch(flagValue bool) bool {
	if flagValue {
		return true
	}
	v, ok := loader.NewEnvLoader(EnvPrefix).Lookup(loader.SettingWatch)
	return ok && loader.ParseBool(v)
}
