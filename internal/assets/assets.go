// Package assets maps prompt asset keys to loaded handles.
//
// Keys have the form "Controls/<namespace>/<name>", for example
// "Controls/PlayStation 5/South". Lookups never fail: an unknown key yields
// the catalog's placeholder so a missing icon can never disrupt the UI.
package assets

import (
	"path"
	"sort"
	"sync"
)

// Root is the first element of every prompt asset key.
const Root = "Controls"

// Key builds the asset key of a binding name within a family namespace.
func Key(namespace, name string) string {
	return path.Join(Root, namespace, name)
}

// Lookup resolves asset keys to handles.
type Lookup[T any] interface {
	// Lookup returns the handle for key, or the placeholder when absent.
	Lookup(key string) T
	// Default returns the placeholder handle.
	Default() T
}

// Catalog is an in-memory Lookup. It is safe for concurrent use.
type Catalog[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	def   T
}

// NewCatalog creates an empty catalog with the given placeholder.
func NewCatalog[T any](placeholder T) *Catalog[T] {
	return &Catalog[T]{
		items: make(map[string]T),
		def:   placeholder,
	}
}

// Register stores a handle under key, replacing any previous one.
func (c *Catalog[T]) Register(key string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = v
}

// Get returns the handle stored under key.
func (c *Catalog[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// Lookup implements Lookup.
func (c *Catalog[T]) Lookup(key string) T {
	if v, ok := c.Get(key); ok {
		return v
	}
	return c.def
}

// Default implements Lookup.
func (c *Catalog[T]) Default() T {
	return c.def
}

// Len returns the number of registered keys.
func (c *Catalog[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Keys returns the registered keys in sorted order.
func (c *Catalog[T]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
