package containers

import (
	"sync"
	"sync/atomic"
)

// Disposer is implemented by values that own resources outside the Go heap.
// Dispose is called once, when the last strong reference is released.
type Disposer interface {
	Dispose()
}

type sharedCell[T any] struct {
	value    T
	strong   atomic.Int64
	weak     atomic.Int64
	disposed sync.Once
}

func (c *sharedCell[T]) dispose() {
	c.disposed.Do(func() {
		if d, ok := any(c.value).(Disposer); ok {
			d.Dispose()
		}
	})
}

// Shared is one strong reference to a reference-counted value. Every Shared
// obtained through NewShared, Clone or Weak.Upgrade must be released exactly
// once; releasing the same handle twice is a no-op.
type Shared[T any] struct {
	cell     *sharedCell[T]
	released atomic.Bool
}

// NewShared wraps value in a fresh cell with a strong count of one.
func NewShared[T any](value T) *Shared[T] {
	c := &sharedCell[T]{value: value}
	c.strong.Store(1)
	return &Shared[T]{cell: c}
}

// Get returns the wrapped value. It stays valid after Release, the handle
// only stops counting as an owner.
func (s *Shared[T]) Get() T {
	return s.cell.value
}

// Clone returns a new strong reference to the same value.
func (s *Shared[T]) Clone() *Shared[T] {
	s.cell.strong.Add(1)
	return &Shared[T]{cell: s.cell}
}

// Release gives up this reference.
func (s *Shared[T]) Release() {
	if !s.released.CompareAndSwap(false, true) {
		return
	}
	if s.cell.strong.Add(-1) == 0 {
		s.cell.dispose()
	}
}

// Released reports whether Release was already called on this handle.
func (s *Shared[T]) Released() bool {
	return s.released.Load()
}

// StrongCount returns the number of live strong references to the value.
func (s *Shared[T]) StrongCount() int64 {
	return s.cell.strong.Load()
}

// WeakCount returns the number of weak references to the value.
func (s *Shared[T]) WeakCount() int64 {
	return s.cell.weak.Load()
}

// SameAs reports whether both handles point to the same value.
func (s *Shared[T]) SameAs(other *Shared[T]) bool {
	return other != nil && s.cell == other.cell
}

// Downgrade returns a weak reference that does not keep the value alive.
func (s *Shared[T]) Downgrade() *Weak[T] {
	s.cell.weak.Add(1)
	return &Weak[T]{cell: s.cell}
}

// Weak refers to a shared value without owning it.
type Weak[T any] struct {
	cell    *sharedCell[T]
	dropped atomic.Bool
}

// Upgrade returns a new strong reference if the value still has owners.
// A dropped weak reference never upgrades.
func (w *Weak[T]) Upgrade() (*Shared[T], bool) {
	if w.dropped.Load() {
		return nil, false
	}
	for {
		n := w.cell.strong.Load()
		if n == 0 {
			return nil, false
		}
		if w.cell.strong.CompareAndSwap(n, n+1) {
			return &Shared[T]{cell: w.cell}, true
		}
	}
}

// Drop releases the weak reference.
func (w *Weak[T]) Drop() {
	if w.dropped.CompareAndSwap(false, true) {
		w.cell.weak.Add(-1)
	}
}
