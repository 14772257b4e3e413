package containers_test

import (
	"sync"
	"testing"

	"github.com/spaghettifunk/leek/engine/containers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type disposable struct {
	disposed int
}

func (d *disposable) Dispose() {
	d.disposed++
}

func TestShared_CloneAndRelease(t *testing.T) {
	value := &disposable{}
	a := containers.NewShared(value)
	assert.Equal(t, int64(1), a.StrongCount())

	b := a.Clone()
	assert.Equal(t, int64(2), a.StrongCount())
	assert.True(t, a.SameAs(b))
	assert.Same(t, value, b.Get())

	a.Release()
	assert.Equal(t, int64(1), b.StrongCount())
	assert.Zero(t, value.disposed)

	b.Release()
	assert.Equal(t, int64(0), b.StrongCount())
	assert.Equal(t, 1, value.disposed)
}

func TestShared_DoubleReleaseIsNoop(t *testing.T) {
	value := &disposable{}
	a := containers.NewShared(value)
	b := a.Clone()

	a.Release()
	a.Release()
	assert.True(t, a.Released())
	assert.False(t, b.Released())
	assert.Equal(t, int64(1), b.StrongCount())
	assert.Zero(t, value.disposed)
}

func TestShared_SameAsDistinguishesCells(t *testing.T) {
	a := containers.NewShared(1)
	b := containers.NewShared(1)
	assert.False(t, a.SameAs(b))
	assert.False(t, a.SameAs(nil))
}

func TestWeak_Upgrade(t *testing.T) {
	a := containers.NewShared("texture")
	w := a.Downgrade()
	assert.Equal(t, int64(1), a.WeakCount())

	b, ok := w.Upgrade()
	require.True(t, ok)
	assert.Equal(t, "texture", b.Get())
	assert.Equal(t, int64(2), a.StrongCount())

	a.Release()
	b.Release()
	_, ok = w.Upgrade()
	assert.False(t, ok)

	w.Drop()
	w.Drop()
	assert.Equal(t, int64(0), a.WeakCount())
}

func TestWeak_DroppedNeverUpgrades(t *testing.T) {
	a := containers.NewShared("texture")
	defer a.Release()

	w := a.Downgrade()
	w.Drop()

	b, ok := w.Upgrade()
	assert.False(t, ok)
	assert.Nil(t, b)
	assert.Equal(t, int64(1), a.StrongCount(), "the live owner is untouched")
	assert.Zero(t, a.WeakCount())
}

func TestShared_ConcurrentClones(t *testing.T) {
	value := &disposable{}
	root := containers.NewShared(value)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := root.Clone()
			c.Release()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), root.StrongCount())
	root.Release()
	assert.Equal(t, 1, value.disposed)
}
