package containers_test

import (
	"testing"

	"github.com/spaghettifunk/leek/engine/containers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueue_EnqueueDequeue(t *testing.T) {
	q := containers.NewRingQueue[int](3)
	assert.True(t, q.IsEmpty())

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))
	assert.True(t, q.IsFull())
	assert.ErrorIs(t, q.Enqueue(4), containers.ErrQueueFull)

	v, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, q.Len())
}

func TestRingQueue_PushOverwritesOldest(t *testing.T) {
	q := containers.NewRingQueue[uint16](3)
	for i := uint16(1); i <= 5; i++ {
		q.Push(i)
	}
	assert.Equal(t, []uint16{3, 4, 5}, q.Values())

	last, err := q.Last()
	require.NoError(t, err)
	assert.Equal(t, uint16(5), last)
}

func TestRingQueue_Empty(t *testing.T) {
	q := containers.NewRingQueue[string](0)

	_, err := q.Dequeue()
	assert.ErrorIs(t, err, containers.ErrQueueEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, containers.ErrQueueEmpty)
	_, err = q.Last()
	assert.ErrorIs(t, err, containers.ErrQueueEmpty)
	assert.Empty(t, q.Values())
}
