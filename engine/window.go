package engine

import "github.com/spaghettifunk/leek/engine/core"

//go:generate mockgen -source=window.go -destination=mocks/mock_window.go -package=mocks

// Window is the windowing, input and presentation capability the engine
// loop drives. The platform package provides the glfw implementation.
type Window interface {
	// PollEvents returns the OS events received since the last call.
	PollEvents() []core.Event
	// PressedKeys returns the keys currently held down.
	PressedKeys() core.KeySet
	MouseState() core.MouseState
	// ControllerState samples a connected controller.
	ControllerState(deviceID int) (buttons []bool, axes []float32, ok bool)
	SetFullscreen(fullscreen bool) error
	SetCursorMode(hidden bool, relative bool)
	Size() (width uint32, height uint32)
	// Clear starts a frame. Implementations with a drawing API fill the
	// render target with color, others only check the target is usable.
	Clear(color core.Color) error
	// Present shows the frame rendered since the last Clear.
	Present() error
}
