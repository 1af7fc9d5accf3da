package control

import (
	"errors"
	"testing"

	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/input/source"
	"github.com/dshills/bindkit/internal/logging"
)

type recButton struct {
	bound    []binding.Binding
	clears   int
	consumes int
}

func (r *recButton) Bind(b binding.Binding) { r.bound = append(r.bound, b) }
func (r *recButton) Clear()                 { r.bound = nil; r.clears++ }
func (r *recButton) Consume()               { r.consumes++ }

type recStick struct {
	bound    *binding.Stick
	clears   int
	consumes int
}

func (r *recStick) Bind(s binding.Stick) { r.bound = &s }
func (r *recStick) Clear()               { r.bound = nil; r.clears++ }
func (r *recStick) Consume()             { r.consumes++ }

type fixture struct {
	buttons [ActionCount]*recButton
	sticks  [StickCount]*recStick
	coord   *Coordinator
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{}
	var buttons [ActionCount]Button
	var sticks [StickCount]Stick
	for i := range buttons {
		f.buttons[i] = &recButton{}
		buttons[i] = f.buttons[i]
	}
	for i := range sticks {
		f.sticks[i] = &recStick{}
		sticks[i] = f.sticks[i]
	}
	coord, err := NewCoordinator(buttons, sticks, opts...)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	f.coord = coord
	return f
}

func TestActionNames(t *testing.T) {
	want := []string{"Jump", "Dash", "Climb", "Confirm", "Cancel", "Pause"}
	got := Actions()
	if len(got) != len(want) {
		t.Fatalf("len(Actions()) = %d, want %d", len(got), len(want))
	}
	for i, a := range got {
		if a.Name() != want[i] {
			t.Errorf("Actions()[%d].Name() = %q, want %q", i, a.Name(), want[i])
		}
		parsed, ok := ParseAction(want[i])
		if !ok || parsed != a {
			t.Errorf("ParseAction(%q) = %v, %v", want[i], parsed, ok)
		}
	}
	if _, ok := ParseAction("Fly"); ok {
		t.Error("ParseAction(Fly) should fail")
	}
	if a, ok := ParseAction("jump"); !ok || a != Jump {
		t.Errorf("ParseAction(jump) = %v, %v", a, ok)
	}
}

func TestStickNames(t *testing.T) {
	want := []string{"Move", "Camera", "Menu"}
	for i, s := range Sticks() {
		if s.Name() != want[i] {
			t.Errorf("Sticks()[%d].Name() = %q, want %q", i, s.Name(), want[i])
		}
		if parsed, ok := ParseStick(want[i]); !ok || parsed != s {
			t.Errorf("ParseStick(%q) = %v, %v", want[i], parsed, ok)
		}
	}
	if StickCount.Name() != "Unknown" {
		t.Errorf("StickCount.Name() = %q", StickCount.Name())
	}
}

func TestNewCoordinatorRejectsNil(t *testing.T) {
	var buttons [ActionCount]Button
	var sticks [StickCount]Stick
	if _, err := NewCoordinator(buttons, sticks); err == nil {
		t.Error("NewCoordinator with nil controls should fail")
	}
}

func TestLoadEmptyActionUsesDefaults(t *testing.T) {
	f := newFixture(t, WithLogger(logging.NullLogger))

	user := binding.NewConfig().SetAction(binding.ActionJump)
	if err := f.coord.Load(user); err != nil {
		t.Fatalf("Load: %v", err)
	}

	defJump, _ := binding.Defaults().Action(binding.ActionJump)
	if got := f.buttons[Jump].bound; len(got) != len(defJump) {
		t.Errorf("Jump bound = %v, want defaults %v", got, defJump)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	f := newFixture(t, WithLogger(logging.NullLogger))

	user := binding.NewConfig().SetAction(binding.ActionJump, binding.Key(source.KeySpace))
	if err := f.coord.Load(user); err != nil {
		t.Fatalf("Load: %v", err)
	}

	jump := f.buttons[Jump].bound
	if len(jump) != 1 || jump[0].Source.Key != source.KeySpace {
		t.Errorf("Jump bound = %v, want [key:Space]", jump)
	}

	defDash, _ := binding.Defaults().Action(binding.ActionDash)
	dash := f.buttons[Dash].bound
	if len(dash) != len(defDash) {
		t.Fatalf("Dash bound %d bindings, want %d", len(dash), len(defDash))
	}
	for i := range dash {
		if dash[i] != defDash[i] {
			t.Errorf("Dash[%d] = %v, want %v", i, dash[i], defDash[i])
		}
	}

	for s, st := range f.sticks {
		if st.bound == nil {
			t.Errorf("stick %s not bound", StickID(s))
		}
	}
	if f.coord.Config() != user {
		t.Error("Config() should return the loaded config")
	}
	if !f.coord.Loaded() {
		t.Error("Loaded() = false after Load")
	}
	if got := f.coord.Bindings(Jump); len(got) != 1 {
		t.Errorf("Bindings(Jump) = %v", got)
	}
}

func TestLoadNilUsesDefaults(t *testing.T) {
	f := newFixture(t)
	if err := f.coord.Load(nil); err != nil {
		t.Fatalf("Load(nil): %v", err)
	}
	for a, b := range f.buttons {
		if len(b.bound) == 0 {
			t.Errorf("%s has no bindings", Action(a))
		}
	}
	move := f.coord.StickBindings(Move)
	if len(move.Up) == 0 || move.Deadzone != binding.DefaultStickDeadzone {
		t.Errorf("StickBindings(Move) = %+v", move)
	}
}

func TestLoadMissingBinding(t *testing.T) {
	defaults := binding.Defaults()
	delete(defaults.Actions, binding.ActionClimb)
	f := newFixture(t, WithDefaults(defaults))

	err := f.coord.Load(nil)
	var mb *binding.MissingBindingError
	if !errors.As(err, &mb) {
		t.Fatalf("Load error = %v, want MissingBindingError", err)
	}
	if mb.Kind != binding.KindAction || mb.Name != "Climb" {
		t.Errorf("missing = %s %s, want Action Climb", mb.Kind, mb.Name)
	}
	if err.Error() != "missing Action binding for 'Climb'" {
		t.Errorf("Error() = %q", err.Error())
	}

	for a, b := range f.buttons {
		if len(b.bound) != 0 {
			t.Errorf("%s bound after failed load: %v", Action(a), b.bound)
		}
	}
	for s, st := range f.sticks {
		if st.bound != nil {
			t.Errorf("stick %s bound after failed load", StickID(s))
		}
	}
	if f.coord.Loaded() {
		t.Error("Loaded() = true after failed load")
	}
}

func TestFailedLoadKeepsActiveConfig(t *testing.T) {
	f := newFixture(t, WithDefaults(binding.NewConfig()))
	good := binding.Defaults()
	if err := f.coord.Load(good); err != nil {
		t.Fatalf("Load(good): %v", err)
	}

	err := f.coord.Load(binding.NewConfig())
	if !errors.Is(err, binding.ErrMissingBinding) {
		t.Fatalf("Load error = %v, want ErrMissingBinding", err)
	}
	var mb *binding.MissingBindingError
	if errors.As(err, &mb) && (mb.Kind != binding.KindStick || mb.Name != "Move") {
		t.Errorf("first miss = %s %s, want Stick Move", mb.Kind, mb.Name)
	}
	if f.coord.Config() != good {
		t.Error("active config changed by failed load")
	}
	if len(f.buttons[Jump].bound) != 0 {
		t.Error("controls should stay cleared after failed load")
	}
}

func TestClear(t *testing.T) {
	f := newFixture(t)
	if err := f.coord.Load(nil); err != nil {
		t.Fatalf("Load: %v", err)
	}
	f.coord.Clear()
	for a, b := range f.buttons {
		if len(b.bound) != 0 {
			t.Errorf("%s still bound after Clear", Action(a))
		}
		// Load clears once, Clear once more.
		if b.clears != 2 {
			t.Errorf("%s clears = %d, want 2", Action(a), b.clears)
		}
	}
	for s, st := range f.sticks {
		if st.bound != nil {
			t.Errorf("stick %s still bound after Clear", StickID(s))
		}
	}
	if len(f.coord.Bindings(Jump)) != 0 {
		t.Error("Bindings(Jump) not empty after Clear")
	}
}

func TestReloadReplacesBindings(t *testing.T) {
	f := newFixture(t)
	if err := f.coord.Load(nil); err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg := binding.NewConfig().SetAction(binding.ActionPause, binding.Key(source.KeyP))
	if err := f.coord.Load(cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	pause := f.buttons[Pause].bound
	if len(pause) != 1 || pause[0].Source.Key != source.KeyP {
		t.Errorf("Pause bound = %v, want only key:P", pause)
	}
}

func TestConsumeCallsEveryControl(t *testing.T) {
	f := newFixture(t)
	f.coord.Consume()
	f.coord.Consume()
	for a, b := range f.buttons {
		if b.consumes != 2 {
			t.Errorf("%s consumes = %d, want 2", Action(a), b.consumes)
		}
	}
	for s, st := range f.sticks {
		if st.consumes != 2 {
			t.Errorf("stick %s consumes = %d, want 2", StickID(s), st.consumes)
		}
	}
}

func TestAccessorsOutOfRange(t *testing.T) {
	f := newFixture(t)
	if f.coord.Button(ActionCount) != nil {
		t.Error("Button(ActionCount) should be nil")
	}
	if f.coord.Stick(StickCount) != nil {
		t.Error("Stick(StickCount) should be nil")
	}
	if f.coord.Bindings(ActionCount) != nil {
		t.Error("Bindings(ActionCount) should be nil")
	}
	if f.coord.Button(Jump) != f.buttons[Jump] {
		t.Error("Button(Jump) should return the Jump control")
	}
}
