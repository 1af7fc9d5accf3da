package virtual

import (
	"time"

	"github.com/dshills/bindkit/internal/binding"
)

// edges tracks held state and the pressed/released transitions of one
// digital input across frames.
type edges struct {
	down     bool
	pressed  bool
	released bool
}

// set records the sampled state. Edges accumulate until clear.
func (e *edges) set(down bool) {
	if down && !e.down {
		e.pressed = true
	}
	if !down && e.down {
		e.released = true
	}
	e.down = down
}

func (e *edges) clear() {
	e.pressed = false
	e.released = false
}

// Button is a virtual button fed by any number of physical bindings.
// It is down while any active binding is down.
type Button struct {
	name     string
	buffer   time.Duration
	bindings []binding.Binding

	state         edges
	bufferedUntil time.Time
	now           time.Time
}

// NewButton creates a button. A positive buffer keeps a press available to
// Buffered for that long after it happened.
func NewButton(name string, buffer time.Duration) *Button {
	return &Button{name: name, buffer: buffer}
}

// Name returns the button name.
func (b *Button) Name() string {
	return b.name
}

// Bind attaches a physical binding.
func (b *Button) Bind(bind binding.Binding) {
	b.bindings = append(b.bindings, bind)
}

// Clear detaches every binding and drops pending edges and buffered
// presses. Held state is kept so that a source still held after rebinding
// does not read as a new press.
func (b *Button) Clear() {
	b.bindings = nil
	b.state.clear()
	b.bufferedUntil = time.Time{}
}

// Bindings returns the attached bindings.
func (b *Button) Bindings() []binding.Binding {
	return b.bindings
}

// Update samples the bindings for the frame starting at now.
func (b *Button) Update(p Poller, now time.Time) {
	b.now = now
	down := false
	for _, bind := range b.bindings {
		if active(p, bind) && held(p, bind) {
			down = true
			break
		}
	}
	if down && !b.state.down && b.buffer > 0 {
		b.bufferedUntil = now.Add(b.buffer)
	}
	b.state.set(down)
}

// Consume clears the pressed and released edges. Held state is kept.
func (b *Button) Consume() {
	b.state.clear()
}

// Down reports whether the button is held.
func (b *Button) Down() bool {
	return b.state.down
}

// Pressed reports whether the button went down this frame.
func (b *Button) Pressed() bool {
	return b.state.pressed
}

// Released reports whether the button went up this frame.
func (b *Button) Released() bool {
	return b.state.released
}

// Buffered reports whether a press happened within the buffer window and has
// not been claimed with ConsumeBuffer.
func (b *Button) Buffered() bool {
	return b.now.Before(b.bufferedUntil)
}

// ConsumeBuffer claims the buffered press so it triggers only once.
func (b *Button) ConsumeBuffer() {
	b.bufferedUntil = time.Time{}
}
