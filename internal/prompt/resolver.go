package prompt

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/bindkit/internal/assets"
	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/control"
	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/logging"
)

// BindingSource supplies the bindings currently attached to an action, in
// priority order. *control.Coordinator implements it.
type BindingSource interface {
	Bindings(a control.Action) []binding.Binding
}

type cacheKey struct {
	namespace string
	name      string
}

type entry[T any] struct {
	key    string
	handle T
}

// Stats reports cache activity.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Option configures a Resolver.
type Option func(*options)

type options struct {
	logger *logging.Logger
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Resolver maps actions to prompt icons. It is safe for concurrent use.
type Resolver[T any] struct {
	bindings BindingSource
	devices  device.Provider
	assets   assets.Lookup[T]
	logger   *logging.Logger

	mu     sync.RWMutex
	cache  map[cacheKey]entry[T]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewResolver creates a resolver. A nil device provider means no gamepad is
// ever connected.
func NewResolver[T any](bindings BindingSource, devices device.Provider, lookup assets.Lookup[T], opts ...Option) *Resolver[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Resolver[T]{
		bindings: bindings,
		devices:  devices,
		assets:   lookup,
		logger:   logging.OrNull(o.logger).WithComponent("prompt"),
		cache:    make(map[cacheKey]entry[T]),
	}
}

// Family returns the family prompts are currently shown for.
func (r *Resolver[T]) Family() device.Family {
	return device.Current(r.devices)
}

// snapshot is the device state a single prompt query is answered from.
type snapshot struct {
	connected bool
	pad       device.Gamepad
}

// family returns the family prompts are shown for in this state.
func (s snapshot) family() device.Family {
	if !s.connected {
		return device.FamilyPC
	}
	return device.FamilyOf(s.pad)
}

// snapshot reads the provider once so that one query never mixes two device
// states.
func (r *Resolver[T]) snapshot() snapshot {
	if r.devices == nil || !r.devices.Connected() {
		return snapshot{}
	}
	return snapshot{connected: true, pad: r.devices.Gamepad()}
}

// appliesNow reports whether b is shown by the single-icon prompt: gamepad
// bindings while a gamepad is connected, the others while none is.
func appliesNow(b binding.Binding, connected bool) bool {
	return b.IsForController() == connected
}

// first returns the first binding of a that applies to the device state.
func (r *Resolver[T]) first(a control.Action, connected bool) (binding.Binding, bool) {
	for _, b := range r.bindings.Bindings(a) {
		if appliesNow(b, connected) {
			return b, true
		}
	}
	return binding.Binding{}, false
}

// PromptKey returns the asset key of the icon for a. ok is false when no
// binding applies to the connected device.
func (r *Resolver[T]) PromptKey(a control.Action) (key string, ok bool) {
	snap := r.snapshot()
	b, ok := r.first(a, snap.connected)
	if !ok {
		r.logger.Debug("%s: no binding for %s", a, snap.family())
		return "", false
	}
	return r.lookup(snap.family().Namespace(), b.Name()).key, true
}

// Prompt returns the icon for a, or the asset placeholder.
func (r *Resolver[T]) Prompt(a control.Action) T {
	snap := r.snapshot()
	b, ok := r.first(a, snap.connected)
	if !ok {
		r.logger.Debug("%s: no binding for %s", a, snap.family())
		return r.assets.Default()
	}
	return r.lookup(snap.family().Namespace(), b.Name()).handle
}

// shownInList reports whether b takes part in the multi-icon prompt.
// Bindings restricted to Nintendo pads are left out.
func shownInList(b binding.Binding) bool {
	return b.NotFor == device.GamepadNintendo ||
		b.OnlyFor != device.GamepadNintendo ||
		(b.NotFor == device.GamepadNone && b.OnlyFor == device.GamepadNone)
}

// namespaceFor returns the namespace a binding's icon lives in for the
// multi-icon prompt. Gamepad bindings use the connected pad's family, or
// Xbox-style when none is connected; the others always use PC.
func namespaceFor(b binding.Binding, snap snapshot) string {
	if !b.IsForController() {
		return device.FamilyPC.Namespace()
	}
	if snap.connected {
		return device.FamilyOf(snap.pad).Namespace()
	}
	return device.FamilyXbox.Namespace()
}

// PromptKeys returns the asset keys of every binding of a, in priority order.
func (r *Resolver[T]) PromptKeys(a control.Action) []string {
	snap := r.snapshot()
	var keys []string
	for _, b := range r.bindings.Bindings(a) {
		if !shownInList(b) {
			continue
		}
		keys = append(keys, r.lookup(namespaceFor(b, snap), b.Name()).key)
	}
	return keys
}

// Prompts returns the icons of every binding of a, in priority order.
func (r *Resolver[T]) Prompts(a control.Action) []T {
	snap := r.snapshot()
	var icons []T
	for _, b := range r.bindings.Bindings(a) {
		if !shownInList(b) {
			continue
		}
		icons = append(icons, r.lookup(namespaceFor(b, snap), b.Name()).handle)
	}
	return icons
}

// lookup returns the cached entry for (namespace, name), creating it on
// first use. The asset lookup only runs when the entry is created.
func (r *Resolver[T]) lookup(namespace, name string) entry[T] {
	k := cacheKey{namespace: namespace, name: name}

	r.mu.RLock()
	e, ok := r.cache[k]
	r.mu.RUnlock()
	if ok {
		r.hits.Add(1)
		return e
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.cache[k]; ok {
		r.hits.Add(1)
		return e
	}
	key := assets.Key(namespace, name)
	e = entry[T]{key: key, handle: r.assets.Lookup(key)}
	r.cache[k] = e
	r.misses.Add(1)
	return e
}

// Stats returns the cache counters.
func (r *Resolver[T]) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load(), Entries: len(r.cache)}
}

// Reset drops every cached entry and zeroes the counters.
func (r *Resolver[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[cacheKey]entry[T])
	r.hits.Store(0)
	r.misses.Store(0)
}
