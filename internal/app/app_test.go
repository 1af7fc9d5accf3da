package app

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/config"
	"github.com/dshills/bindkit/internal/control"
	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/input/source"
	"github.com/dshills/bindkit/internal/logging"
)

type fakePoller struct {
	keys    map[source.Key]bool
	buttons map[source.Button]bool
	pad     device.Gamepad
}

func newFakePoller() *fakePoller {
	return &fakePoller{
		keys:    make(map[source.Key]bool),
		buttons: make(map[source.Button]bool),
	}
}

func (f *fakePoller) KeyDown(k source.Key) bool           { return f.keys[k] }
func (f *fakePoller) MouseDown(m source.MouseButton) bool { return false }
func (f *fakePoller) ButtonDown(b source.Button) bool     { return f.buttons[b] }
func (f *fakePoller) AxisValue(a source.Axis) float64     { return 0 }
func (f *fakePoller) Gamepad() device.Gamepad             { return f.pad }

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func testOptions(t *testing.T) Options {
	t.Helper()
	t.Setenv("BINDKIT_ASSETS", "")
	t.Setenv("BINDKIT_WATCH", "")
	return Options{
		ConfigPath: filepath.Join(t.TempDir(), "controls.toml"),
		Logger:     logging.NullLogger,
	}
}

func newTestApp(t *testing.T, opts Options, devices device.Provider, p *fakePoller) *Application {
	t.Helper()
	app, err := New(opts, devices, p)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { app.Shutdown() })
	return app
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
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

func TestNewUsesDefaultsWithoutFile(t *testing.T) {
	app := newTestApp(t, testOptions(t), nil, newFakePoller())

	if !app.Coordinator().Loaded() {
		t.Fatal("coordinator not loaded")
	}
	want, _ := binding.Defaults().Action(binding.ActionJump)
	got := app.Coordinator().Bindings(control.Jump)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Bindings(Jump) = %v, want %v", got, want)
	}
	if app.Watching() {
		t.Error("Watching() = true without Watch option")
	}
}

func TestNewLoadsControlsFile(t *testing.T) {
	opts := testOptions(t)
	writeFile(t, opts.ConfigPath, "[[actions.Jump]]\nsource = \"key:Space\"\n")

	app := newTestApp(t, opts, nil, newFakePoller())

	got := app.Coordinator().Bindings(control.Jump)
	if len(got) != 1 || got[0].Source != source.FromKey(source.KeySpace) {
		t.Errorf("Bindings(Jump) = %v, want [key:Space]", got)
	}
	// Unlisted controls fall back to the defaults.
	want, _ := binding.Defaults().Action(binding.ActionDash)
	if dash := app.Coordinator().Bindings(control.Dash); !reflect.DeepEqual(dash, want) {
		t.Errorf("Bindings(Dash) = %v, want %v", dash, want)
	}
}

func TestNewRejectsBadFile(t *testing.T) {
	opts := testOptions(t)
	writeFile(t, opts.ConfigPath, "[[actions.Jump]]\nsource = \"key:Nope\"\n")

	_, err := New(opts, nil, newFakePoller())
	if err == nil {
		t.Fatal("New() error = nil, want error")
	}
	if !errors.Is(err, ErrInitialization) {
		t.Errorf("errors.Is(err, ErrInitialization) = false for %v", err)
	}
	if !errors.Is(err, config.ErrInvalidBinding) {
		t.Errorf("errors.Is(err, ErrInvalidBinding) = false for %v", err)
	}
	var ie *InitError
	if !errors.As(err, &ie) || ie.Component != "config" {
		t.Errorf("InitError component = %v, want config", ie)
	}
}

func TestNewErrors(t *testing.T) {
	opts := testOptions(t)
	if _, err := New(opts, nil, nil); err == nil {
		t.Error("New() with nil poller succeeded")
	}

	opts.Logger = nil
	opts.LogLevel = "chatty"
	if _, err := New(opts, nil, newFakePoller()); !errors.Is(err, ErrInitialization) {
		t.Errorf("New() with bad log level error = %v, want ErrInitialization", err)
	}

	opts = testOptions(t)
	opts.AssetsDir = filepath.Join(t.TempDir(), "missing")
	if _, err := New(opts, nil, newFakePoller()); !errors.Is(err, ErrInitialization) {
		t.Errorf("New() with missing assets error = %v, want ErrInitialization", err)
	}
}

func TestFrameUpdatesControls(t *testing.T) {
	p := newFakePoller()
	app := newTestApp(t, testOptions(t), nil, p)
	jump := app.Controls().Button(control.Jump)

	p.keys[source.KeyC] = true
	if err := app.Frame(t0); err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if !jump.Down() || !jump.Pressed() {
		t.Errorf("Jump Down/Pressed = %v/%v, want true/true", jump.Down(), jump.Pressed())
	}

	app.EndFrame()
	if jump.Pressed() {
		t.Error("Pressed() = true after EndFrame")
	}

	app.Frame(t0.Add(16 * time.Millisecond))
	if !jump.Down() || jump.Pressed() {
		t.Errorf("held Jump Down/Pressed = %v/%v, want true/false", jump.Down(), jump.Pressed())
	}
}

func TestPromptsFollowDevice(t *testing.T) {
	opts := testOptions(t)
	opts.AssetsDir = t.TempDir()
	for _, f := range []string{"Xbox Series/South.png", "PC/C.png"} {
		path := filepath.Join(opts.AssetsDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		writeFile(t, path, "png")
	}

	devices := device.NewStatic(false, device.GamepadNone)
	app := newTestApp(t, opts, devices, newFakePoller())
	r := app.Resolver()

	if app.Catalog().Len() != 2 {
		t.Errorf("Catalog().Len() = %d, want 2", app.Catalog().Len())
	}
	if got := r.Prompt(control.Jump); got != "PC/C.png" {
		t.Errorf("Prompt(Jump) = %q, want %q", got, "PC/C.png")
	}

	devices.Set(true, device.GamepadXbox)
	if got := r.Prompt(control.Jump); got != "Xbox Series/South.png" {
		t.Errorf("Prompt(Jump) = %q, want %q", got, "Xbox Series/South.png")
	}

	devices.Set(true, device.GamepadNintendo)
	if got := r.Prompt(control.Jump); got != "" {
		t.Errorf("Prompt(Jump) = %q, want placeholder", got)
	}
	want := []string{"Controls/PC/C", "Controls/Nintendo Switch/South"}
	if got := r.PromptKeys(control.Jump); !reflect.DeepEqual(got, want) {
		t.Errorf("PromptKeys(Jump) = %v, want %v", got, want)
	}
}

func TestWatchReloadsBetweenFrames(t *testing.T) {
	opts := testOptions(t)
	opts.Watch = true
	writeFile(t, opts.ConfigPath, "[[actions.Jump]]\nsource = \"key:Space\"\n")

	app := newTestApp(t, opts, nil, newFakePoller())
	if !app.Watching() {
		t.Fatal("Watching() = false")
	}

	xKey := source.FromKey(source.KeyX)
	writeFile(t, opts.ConfigPath, "[[actions.Jump]]\nsource = \"key:X\"\n")
	reloaded := waitFor(t, func() bool {
		app.Frame(t0)
		b := app.Coordinator().Bindings(control.Jump)
		return len(b) == 1 && b[0].Source == xKey
	})
	if !reloaded {
		t.Fatal("controls file change not applied")
	}

	writeFile(t, opts.ConfigPath, "[[actions.Jump]]\nsource = \"key:Nope\"\n")
	failed := waitFor(t, func() bool {
		return app.Frame(t0) != nil
	})
	if !failed {
		t.Fatal("bad controls file did not fail reload")
	}
	b := app.Coordinator().Bindings(control.Jump)
	if len(b) != 1 || b[0].Source != xKey {
		t.Errorf("Bindings(Jump) after failed reload = %v, want [key:X]", b)
	}
}

func TestShutdown(t *testing.T) {
	app, err := New(testOptions(t), nil, newFakePoller())
	if err != nil {
		t.Fatal(err)
	}

	if err := app.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if err := app.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
	if !app.IsShutdown() {
		t.Error("IsShutdown() = false")
	}
	if err := app.Frame(t0); !errors.Is(err, ErrShutdown) {
		t.Errorf("Frame() after Shutdown error = %v, want ErrShutdown", err)
	}
	if app.Coordinator().Loaded() {
		t.Error("controls still bound after Shutdown")
	}
}
