package core

import "time"

// EngineContext is the read-only view of input and time handed to the active
// scene for one frame.
type EngineContext struct {
	keyboardDown    KeySet
	keyboardPressed KeySet
	mouseState      MouseState
	// DeltaTime is the fixed logic step.
	DeltaTime time.Duration
	// ElapsedTime is the time since the engine started.
	ElapsedTime time.Duration
	Controllers map[int]GameController
}

func NewEngineContext(
	keyboardDown KeySet,
	keyboardPressed KeySet,
	deltaTime time.Duration,
	elapsedTime time.Duration,
	mouseState MouseState,
	controllers map[int]GameController,
) *EngineContext {
	if keyboardDown == nil {
		keyboardDown = make(KeySet)
	}
	if keyboardPressed == nil {
		keyboardPressed = make(KeySet)
	}
	return &EngineContext{
		keyboardDown:    keyboardDown,
		keyboardPressed: keyboardPressed,
		mouseState:      mouseState,
		DeltaTime:       deltaTime,
		ElapsedTime:     elapsedTime,
		Controllers:     controllers,
	}
}

// IsKeyDown reports whether the key is held this frame.
func (c *EngineContext) IsKeyDown(key KeyCode) bool {
	return c.keyboardDown.Has(key)
}

// IsKeyPressed reports whether the key went down this frame.
func (c *EngineContext) IsKeyPressed(key KeyCode) bool {
	return c.keyboardPressed.Has(key)
}

func (c *EngineContext) MouseState() MouseState {
	return c.mouseState
}

// DeltaMillis returns the fixed logic step in milliseconds.
func (c *EngineContext) DeltaMillis() uint32 {
	return uint32(c.DeltaTime / time.Millisecond)
}

func (c *EngineContext) ElapsedMillis() uint64 {
	return uint64(c.ElapsedTime / time.Millisecond)
}

// PressedKeys returns the keys that went down this frame, in ascending order.
func (c *EngineContext) PressedKeys() []KeyCode {
	return c.keyboardPressed.Sorted()
}

// HeldKeys returns the keys held this frame, in ascending order.
func (c *EngineContext) HeldKeys() []KeyCode {
	return c.keyboardDown.Sorted()
}
