package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/control"
	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/input/source"
)

func TestDefaultsRoundTrip(t *testing.T) {
	for _, format := range []string{"toml", "yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, format, binding.Defaults()); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			got, err := LoadReader(&buf, format)
			if err != nil {
				t.Fatalf("LoadReader() error = %v", err)
			}
			if !reflect.DeepEqual(got, binding.Defaults()) {
				t.Errorf("round trip through %s changed the config", format)
			}
		})
	}
}

func TestDecodeTOMLDocument(t *testing.T) {
	data := `
[[actions.Jump]]
source = "key:Space"

[[actions.Jump]]
source = "button:East"
only_for = "Nintendo"

[[actions.Climb]]
source = "axis:LeftTrigger+"
deadzone = 0.25

[sticks.Move]
deadzone = 0.2
up = [{ source = "key:W" }]
down = [{ source = "key:S" }]
left = [{ source = "key:A" }]
right = [{ source = "key:D" }]
`
	cfg, err := LoadReader(strings.NewReader(data), "toml")
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}

	jump, ok := cfg.Action("Jump")
	if !ok || len(jump) != 2 {
		t.Fatalf("Jump = %v", jump)
	}
	if jump[0] != binding.Key(source.KeySpace) {
		t.Errorf("Jump[0] = %v", jump[0])
	}
	if jump[1] != binding.Button(source.ButtonEast).OnlyOn(device.GamepadNintendo) {
		t.Errorf("Jump[1] = %v", jump[1])
	}

	climb, _ := cfg.Action("Climb")
	if climb[0].Source.Deadzone != 0.25 || climb[0].Source.Axis != source.AxisLeftTrigger {
		t.Errorf("Climb[0] = %+v", climb[0].Source)
	}

	move, ok := cfg.Stick("Move")
	if !ok || move.Deadzone != 0.2 || len(move.Up) != 1 {
		t.Errorf("Move = %+v", move)
	}

	if _, ok := cfg.Action("Dash"); ok {
		t.Error("Dash should be absent so the default applies")
	}
}

func TestDecodeFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		path string
	}{
		{
			"unknown source",
			Document{Actions: map[string][]BindingDoc{"Jump": {{Source: "key:C"}, {Source: "key:Hyper"}}}},
			"actions.Jump[1].source",
		},
		{
			"unknown gamepad",
			Document{Actions: map[string][]BindingDoc{"Jump": {{Source: "button:South", NotFor: "Dreamcast"}}}},
			"actions.Jump[0].not_for",
		},
		{
			"deadzone on key",
			Document{Actions: map[string][]BindingDoc{"Dash": {{Source: "key:X", Deadzone: 0.3}}}},
			"actions.Dash[0].deadzone",
		},
		{
			"both restrictions",
			Document{Actions: map[string][]BindingDoc{"Dash": {{Source: "button:West", OnlyFor: "Xbox", NotFor: "Nintendo"}}}},
			"actions.Dash[0]",
		},
		{
			"stick direction",
			Document{Sticks: map[string]StickDoc{"Move": {Left: []BindingDoc{{Source: "axis:Wheel+"}}}}},
			"sticks.Move.left[0].source",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.doc)
			var ferr *FieldError
			if !errors.As(err, &ferr) {
				t.Fatalf("Decode() error = %v, want *FieldError", err)
			}
			if ferr.Path != tt.path {
				t.Errorf("Path = %q, want %q", ferr.Path, tt.path)
			}
			if !errors.Is(err, ErrInvalidBinding) {
				t.Error("FieldError should match ErrInvalidBinding")
			}
		})
	}
}

func TestDecodeEmptyAction(t *testing.T) {
	doc := Document{Actions: map[string][]BindingDoc{"Pause": {}}}
	if _, err := Decode(doc); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("Decode() error = %v, want ErrInvalidBinding", err)
	}
}

func TestEncodeNil(t *testing.T) {
	doc := Encode(nil)
	if len(doc.Actions) != 0 || len(doc.Sticks) != 0 {
		t.Errorf("Encode(nil) = %+v", doc)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "controls.toml"))
	if err != nil || cfg != nil {
		t.Errorf("Load(missing) = %v, %v, want nil, nil", cfg, err)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"controls.toml", "controls.yaml", "controls.json"} {
		path := filepath.Join(dir, "nested", name)
		want := binding.NewConfig().SetAction(binding.ActionPause, binding.Key(source.KeyP), binding.Button(source.ButtonStart))
		if err := Save(path, want); err != nil {
			t.Fatalf("Save(%s) error = %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Load(%s) = %+v, want %+v", name, got, want)
		}
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "controls.ini"), binding.NewConfig())
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Save(.ini) error = %v", err)
	}
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controls.toml")
	if err := os.WriteFile(path, []byte("[[actions.Jump]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("Path = %q, want %q", perr.Path, path)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("BINDKIT_CONTROLS", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got := ConfigPath("/flag.toml"); got != "/flag.toml" {
		t.Errorf("ConfigPath(flag) = %q", got)
	}
	if got := ConfigPath(""); got != filepath.Join("/xdg", "bindkit", "controls.toml") {
		t.Errorf("ConfigPath(default) = %q", got)
	}
	t.Setenv("BINDKIT_CONTROLS", "/env.yaml")
	if got := ConfigPath(""); got != "/env.yaml" {
		t.Errorf("ConfigPath(env) = %q", got)
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("BINDKIT_LOG_LEVEL", "")
	if got := LogLevel("", "warn"); got != "warn" {
		t.Errorf("LogLevel() = %q, want fallback", got)
	}
	t.Setenv("BINDKIT_LOG_LEVEL", "debug")
	if got := LogLevel("", "warn"); got != "debug" {
		t.Errorf("LogLevel() = %q, want env", got)
	}
	if got := LogLevel("error", "warn"); got != "error" {
		t.Errorf("LogLevel() = %q, want flag", got)
	}
}

func TestAssetsDirAndWatch(t *testing.T) {
	t.Setenv("BINDKIT_ASSETS", "")
	t.Setenv("BINDKIT_WATCH", "")
	if got := AssetsDir(""); got != "" {
		t.Errorf("AssetsDir() = %q, want empty", got)
	}
	if Watch(false) {
		t.Error("Watch(false) = true with no env")
	}

	t.Setenv("BINDKIT_ASSETS", "/icons")
	t.Setenv("BINDKIT_WATCH", "yes")
	if got := AssetsDir(""); got != "/icons" {
		t.Errorf("AssetsDir() = %q, want env", got)
	}
	if got := AssetsDir("/flag"); got != "/flag" {
		t.Errorf("AssetsDir(flag) = %q, want flag", got)
	}
	if !Watch(false) {
		t.Error("Watch(false) = false with BINDKIT_WATCH=yes")
	}
}

func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestWatcherMarksPending(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.toml")

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if w.Pending() {
		t.Fatal("Pending() = true before any change")
	}

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, w.Pending) {
		t.Fatal("watcher did not see the write")
	}
	if !w.Take() {
		t.Error("Take() = false while pending")
	}
	if w.Pending() {
		t.Error("Take() did not clear the flag")
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "controls.toml"), nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "no", "controls.toml"), nil); err == nil {
		t.Error("NewWatcher() should fail when the directory is missing")
	}
}

type nopButton struct{}

func (nopButton) Bind(binding.Binding) {}
func (nopButton) Clear()               {}
func (nopButton) Consume()             {}

type nopStick struct{}

func (nopStick) Bind(binding.Stick) {}
func (nopStick) Clear()             {}
func (nopStick) Consume()           {}

func newCoordinator(t *testing.T, defaults *binding.Config) *control.Coordinator {
	t.Helper()
	var buttons [control.ActionCount]control.Button
	var sticks [control.StickCount]control.Stick
	for i := range buttons {
		buttons[i] = nopButton{}
	}
	for i := range sticks {
		sticks[i] = nopStick{}
	}
	c, err := control.NewCoordinator(buttons, sticks, control.WithDefaults(defaults))
	if err != nil {
		t.Fatalf("NewCoordinator() error = %v", err)
	}
	return c
}

func TestReloaderApplyPending(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.toml")
	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	coord := newCoordinator(t, binding.Defaults())
	if err := coord.Load(nil); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r := NewReloader(w, nil)

	if applied, err := r.ApplyPending(coord); applied || err != nil {
		t.Errorf("ApplyPending() with no change = %v, %v", applied, err)
	}

	if err := os.WriteFile(path, []byte("[[actions.Jump]]\nsource = \"key:Space\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, w.Pending) {
		t.Fatal("watcher did not see the write")
	}
	applied, err := r.ApplyPending(coord)
	if err != nil || !applied {
		t.Fatalf("ApplyPending() = %v, %v", applied, err)
	}
	jump := coord.Bindings(control.Jump)
	if len(jump) != 1 || jump[0].Source.Key != source.KeySpace {
		t.Errorf("Jump after reload = %v", jump)
	}
}

func TestReloaderKeepsPreviousOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.toml")
	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	defaults := binding.Defaults()
	delete(defaults.Actions, binding.ActionClimb)
	coord := newCoordinator(t, defaults)
	prev := binding.NewConfig().
		SetAction(binding.ActionJump, binding.Key(source.KeyJ)).
		SetAction(binding.ActionClimb, binding.Key(source.KeyZ))
	if err := coord.Load(prev); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r := NewReloader(w, nil)

	tests := []struct {
		name string
		load func(string) (*binding.Config, error)
	}{
		{
			"parse failure",
			func(string) (*binding.Config, error) { return nil, &ParseError{Path: path, Message: "bad"} },
		},
		{
			"missing binding",
			func(string) (*binding.Config, error) {
				return binding.NewConfig().SetAction(binding.ActionJump, binding.Key(source.KeySpace)), nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.load = tt.load
			w.pending.Store(true)
			applied, err := r.ApplyPending(coord)
			if applied || err == nil {
				t.Fatalf("ApplyPending() = %v, %v, want failure", applied, err)
			}
			if coord.Config() != prev {
				t.Error("active config replaced by a failed reload")
			}
			jump := coord.Bindings(control.Jump)
			if len(jump) != 1 || jump[0].Source.Key != source.KeyJ {
				t.Errorf("Jump = %v, want previous bindings restored", jump)
			}
			if !coord.Loaded() {
				t.Error("controls left cleared after a failed reload")
			}
		})
	}
}
