package resources

import (
	"sort"

	"github.com/spaghettifunk/leek/engine/containers"
)

// Cache stores shared handles to resources by key.
//
// Handles returned by Get are new strong references owned by the caller.
// Handles returned by Insert and Remove carry the reference the cache held,
// ownership moves to the caller.
type Cache[K CacheKey, T any] interface {
	// Get returns a new reference to the value stored at key, if any.
	Get(key K) (*containers.Shared[T], bool)
	// Insert wraps value in a fresh handle and stores it at key, returning
	// the handle previously stored there.
	Insert(key K, value T) (*containers.Shared[T], bool)
	// Remove takes the entry out of the cache. Outstanding references stay valid.
	Remove(key K) (*containers.Shared[T], bool)
	// Clear drops every entry, regardless of outstanding references.
	Clear()
	Len() int
	// DropUnused drops every entry nobody but the cache refers to.
	DropUnused()
}

// HashCache is a map backed Cache.
type HashCache[K CacheKey, T any] struct {
	entries map[K]*containers.Shared[T]
}

func NewHashCache[K CacheKey, T any]() *HashCache[K, T] {
	return &HashCache[K, T]{
		entries: make(map[K]*containers.Shared[T]),
	}
}

func (c *HashCache[K, T]) Get(key K) (*containers.Shared[T], bool) {
	h, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return h.Clone(), true
}

func (c *HashCache[K, T]) Insert(key K, value T) (*containers.Shared[T], bool) {
	prev, ok := c.entries[key]
	c.entries[key] = containers.NewShared(value)
	return prev, ok
}

func (c *HashCache[K, T]) Remove(key K) (*containers.Shared[T], bool) {
	h, ok := c.entries[key]
	if ok {
		delete(c.entries, key)
	}
	return h, ok
}

func (c *HashCache[K, T]) Clear() {
	for key, h := range c.entries {
		delete(c.entries, key)
		h.Release()
	}
}

func (c *HashCache[K, T]) Len() int {
	return len(c.entries)
}

func (c *HashCache[K, T]) DropUnused() {
	for key, h := range c.entries {
		if h.StrongCount() <= 1 {
			delete(c.entries, key)
			h.Release()
		}
	}
}

// Contains reports whether key is cached without creating a new reference.
func (c *HashCache[K, T]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Range calls fn for every entry until fn returns false. The handle passed to
// fn is the cache's own reference and must not be released.
func (c *HashCache[K, T]) Range(fn func(key K, value *containers.Shared[T]) bool) {
	for key, h := range c.entries {
		if !fn(key, h) {
			return
		}
	}
}

// Keys returns the cached keys ordered by path.
func (c *HashCache[K, T]) Keys() []K {
	keys := make([]K, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Path() < keys[j].Path()
	})
	return keys
}

// FindBySuffix returns the first key, in path order, whose path is a trailing
// path of name.
func (c *HashCache[K, T]) FindBySuffix(name string) (K, bool) {
	for _, key := range c.Keys() {
		if PathEndsWith(name, key.Path()) {
			return key, true
		}
	}
	var zero K
	return zero, false
}

// EntryStats describes one cache entry for the inspector.
type EntryStats struct {
	Key    string
	Size   uint64
	Strong int64
	Weak   int64
}

// Inspect reports every entry ordered by key path. sizeFn may be nil.
func (c *HashCache[K, T]) Inspect(sizeFn func(T) uint64) []EntryStats {
	stats := make([]EntryStats, 0, len(c.entries))
	for _, key := range c.Keys() {
		h := c.entries[key]
		var size uint64
		if sizeFn != nil {
			size = sizeFn(h.Get())
		}
		stats = append(stats, EntryStats{
			Key:    key.Path(),
			Size:   size,
			Strong: h.StrongCount(),
			Weak:   h.WeakCount(),
		})
	}
	return stats
}
