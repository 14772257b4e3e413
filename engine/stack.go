package engine

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/leek/engine/containers"
	"github.com/spaghettifunk/leek/engine/core"
)

type stackEntry struct {
	id    uuid.UUID
	scene Scene
}

// SceneStack owns the scenes of a running engine; the last one is active.
type SceneStack struct {
	entries []stackEntry
}

func NewSceneStack() *SceneStack {
	return &SceneStack{}
}

// Push puts scene on top and returns the id it is known by in the logs.
func (s *SceneStack) Push(scene Scene) uuid.UUID {
	id := uuid.New()
	s.entries = append(s.entries, stackEntry{id: id, scene: scene})
	core.LogDebug("scene %s pushed (depth %d)", id, len(s.entries))
	return id
}

// Pop removes the top scene and disposes of it.
func (s *SceneStack) Pop() bool {
	if len(s.entries) == 0 {
		return false
	}
	i := len(s.entries) - 1
	top := s.entries[i]
	s.entries[i] = stackEntry{}
	s.entries = s.entries[:i]
	core.LogDebug("scene %s popped (depth %d)", top.id, len(s.entries))
	if d, ok := top.scene.(containers.Disposer); ok {
		d.Dispose()
	}
	return true
}

// Top returns the active scene.
func (s *SceneStack) Top() (Scene, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1].scene, true
}

// TopID returns the id of the active scene.
func (s *SceneStack) TopID() (uuid.UUID, bool) {
	if len(s.entries) == 0 {
		return uuid.Nil, false
	}
	return s.entries[len(s.entries)-1].id, true
}

func (s *SceneStack) Len() int {
	return len(s.entries)
}

func (s *SceneStack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Scenes returns the scenes from bottom to top.
func (s *SceneStack) Scenes() []Scene {
	out := make([]Scene, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.scene
	}
	return out
}

// Clear pops every scene, top first.
func (s *SceneStack) Clear() {
	for s.Pop() {
	}
}
