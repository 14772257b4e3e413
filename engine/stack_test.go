package engine_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/spaghettifunk/leek/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneStack(t *testing.T) {
	var log []string
	a := &scriptedScene{name: "A", log: &log}
	b := &scriptedScene{name: "B", log: &log}

	s := engine.NewSceneStack()
	assert.True(t, s.IsEmpty())
	_, ok := s.Top()
	assert.False(t, ok)
	id, ok := s.TopID()
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)

	idA := s.Push(a)
	idB := s.Push(b)
	assert.NotEqual(t, idA, idB)
	assert.Equal(t, 2, s.Len())

	top, ok := s.Top()
	require.True(t, ok)
	assert.Same(t, b, top)
	topID, _ := s.TopID()
	assert.Equal(t, idB, topID)
	assert.Equal(t, []engine.Scene{a, b}, s.Scenes())

	require.True(t, s.Pop())
	assert.True(t, b.disposed)
	assert.False(t, a.disposed)

	s.Clear()
	assert.True(t, a.disposed)
	assert.False(t, s.Pop())
}

func TestActionKind_String(t *testing.T) {
	assert.Equal(t, "Quit", engine.Quit().Kind.String())
	assert.Equal(t, "PushScene", engine.PushScene(nil).Kind.String())
	assert.Equal(t, "Nothing", engine.Action{}.Kind.String())
	assert.Equal(t, "Unknown", engine.ActionKind(99).String())
}
