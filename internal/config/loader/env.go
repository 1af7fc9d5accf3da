package loader

import (
	"os"
	"strings"
)

// Setting names read from the environment.
const (
	SettingControls = "controls"
	SettingAssets   = "assets"
	SettingLogLevel = "log_level"
	SettingWatch    = "watch"
)

// EnvLoader reads settings from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "BINDKIT_")
	mapping map[string]string // Env var -> setting name
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "BINDKIT_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
	}
}

func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "CONTROLS":  SettingControls,
		prefix + "ASSETS":    SettingAssets,
		prefix + "LOG_LEVEL": SettingLogLevel,
		prefix + "WATCH":     SettingWatch,
	}
}

// Load returns every mapped setting present in the environment.
// Unmapped prefixed variables are included under their lowercased name.
// Empty values are treated as unset.
func (l *EnvLoader) Load() map[string]string {
	settings := make(map[string]string)

	for env, name := range l.mapping {
		if val := os.Getenv(env); val != "" {
			settings[name] = val
		}
	}

	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || value == "" || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}
		settings[strings.ToLower(strings.TrimPrefix(name, l.prefix))] = value
	}

	return settings
}

// Lookup returns the value of one setting.
func (l *EnvLoader) Lookup(setting string) (string, bool) {
	for env, name := range l.mapping {
		if name != setting {
			continue
		}
		if val := os.Getenv(env); val != "" {
			return val, true
		}
	}
	return "", false
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, setting string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = setting
}

// ParseBool interprets common truthy spellings.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// GetEnvOrDefault returns the environment variable value or a default.
func GetEnvOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}
