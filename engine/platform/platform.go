package platform

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/leek/engine"
	"github.com/spaghettifunk/leek/engine/core"
)

var _ engine.Window = (*Platform)(nil)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Options describe the window the platform opens.
type Options struct {
	Title         string
	X, Y          uint32
	Width, Height uint32
	// LogicalWidth and LogicalHeight lock the window aspect ratio when set.
	LogicalWidth   uint32
	LogicalHeight  uint32
	Fullscreen     bool
	HideCursor     bool
	RelativeCursor bool
}

// Platform is the glfw backed window. It buffers the events delivered by
// the glfw callbacks until the engine polls them.
type Platform struct {
	Window *glfw.Window

	events   []core.Event
	held     core.KeySet
	windowed [4]int
	quit     atomic.Bool
}

func New() (*Platform, error) {
	return &Platform{
		Window: nil,
		held:   core.NewKeySet(),
	}, nil
}

func (p *Platform) Startup(opts Options) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(int(opts.Width), int(opts.Height), opts.Title, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		glfw.Terminate()
		return err
	}
	window.MakeContextCurrent()
	p.Window = window
	p.windowed = [4]int{int(opts.X), int(opts.Y), int(opts.Width), int(opts.Height)}

	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.Window.SetCursorPosCallback(p.cursorPosCallback)
	p.Window.SetScrollCallback(p.scrollCallback)
	p.Window.SetFramebufferSizeCallback(p.framebufferSizeCallback)
	p.Window.SetCloseCallback(p.closeCallback)
	glfw.SetJoystickCallback(p.joystickCallback)

	p.Window.SetPos(int(opts.X), int(opts.Y))
	if opts.LogicalWidth > 0 && opts.LogicalHeight > 0 {
		p.Window.SetAspectRatio(int(opts.LogicalWidth), int(opts.LogicalHeight))
	}
	p.SetCursorMode(opts.HideCursor, opts.RelativeCursor)
	if opts.Fullscreen {
		if err := p.SetFullscreen(true); err != nil {
			return err
		}
	}
	p.Window.Show()

	// joysticks plugged in before startup never trigger the callback
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() {
			p.joystickCallback(joy, glfw.Connected)
		}
	}
	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

// RequestQuit makes the next PollEvents report a quit event. It is safe to
// call from any goroutine.
func (p *Platform) RequestQuit() {
	if p.quit.CompareAndSwap(false, true) {
		glfw.PostEmptyEvent()
	}
}

func (p *Platform) PollEvents() []core.Event {
	glfw.PollEvents()
	if p.quit.Swap(false) {
		p.push(core.NewQuitEvent())
	}
	events := p.events
	p.events = nil
	return events
}

func (p *Platform) PressedKeys() core.KeySet {
	return p.held.Clone()
}

func (p *Platform) MouseState() core.MouseState {
	x, y := p.Window.GetCursorPos()
	state := core.MouseState{X: int32(x), Y: int32(y)}
	for _, b := range []glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle} {
		if btn, ok := translateButton(b); ok {
			state.Buttons[btn] = p.Window.GetMouseButton(b) == glfw.Press
		}
	}
	return state
}

func (p *Platform) ControllerState(deviceID int) ([]bool, []float32, bool) {
	joy := glfw.Joystick(deviceID)
	if !joy.Present() {
		return nil, nil, false
	}
	actions := joy.GetButtons()
	buttons := make([]bool, len(actions))
	for i, a := range actions {
		buttons[i] = a == glfw.Press
	}
	return buttons, joy.GetAxes(), true
}

func (p *Platform) SetFullscreen(fullscreen bool) error {
	if p.Window == nil {
		return fmt.Errorf("window not started")
	}
	if !fullscreen {
		w := p.windowed
		p.Window.SetMonitor(nil, w[0], w[1], w[2], w[3], 0)
		return nil
	}

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return fmt.Errorf("no primary monitor available")
	}
	x, y := p.Window.GetPos()
	width, height := p.Window.GetSize()
	p.windowed = [4]int{x, y, width, height}

	mode := monitor.GetVideoMode()
	p.Window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	return nil
}

func (p *Platform) SetCursorMode(hidden, relative bool) {
	switch {
	case relative:
		p.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	case hidden:
		p.Window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	default:
		p.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (p *Platform) Size() (uint32, uint32) {
	w, h := p.Window.GetFramebufferSize()
	return uint32(w), uint32(h)
}

// Clear only checks the window is still there. The platform carries no
// drawing API: scenes paint the whole frame and Present swaps it as is,
// the clear color is never applied.
func (p *Platform) Clear(color core.Color) error {
	if p.Window == nil {
		return core.ErrContextLost
	}
	return nil
}

func (p *Platform) Present() error {
	if p.Window == nil {
		return core.ErrContextLost
	}
	p.Window.SwapBuffers()
	return nil
}

func (p *Platform) push(e core.Event) {
	p.events = append(p.events, e)
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	code, ok := translateKey(key)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		p.held.Add(code)
		p.push(core.NewKeyEvent(code, true))
	case glfw.Repeat:
		p.push(core.Event{Type: core.EVENT_CODE_KEY_PRESSED, Data: &core.KeyEvent{KeyCode: code, Repeat: true}})
	case glfw.Release:
		p.held.Remove(code)
		p.push(core.NewKeyEvent(code, false))
	}
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	btn, ok := translateButton(button)
	if !ok {
		return
	}
	x, y := w.GetCursorPos()
	code := core.EVENT_CODE_BUTTON_RELEASED
	if action == glfw.Press {
		code = core.EVENT_CODE_BUTTON_PRESSED
	}
	p.push(core.Event{Type: code, Data: &core.MouseEvent{Button: btn, PosX: int32(x), PosY: int32(y)}})
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.push(core.Event{Type: core.EVENT_CODE_MOUSE_MOVED, Data: &core.MouseEvent{PosX: int32(xpos), PosY: int32(ypos)}})
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	var scroll int8
	switch {
	case yoff > 0:
		scroll = 1
	case yoff < 0:
		scroll = -1
	}
	p.push(core.Event{Type: core.EVENT_CODE_MOUSE_WHEEL, Data: &core.MouseEvent{Scroll: scroll}})
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	p.push(core.Event{Type: core.EVENT_CODE_RESIZED, Data: &core.SystemEvent{WindowWidth: uint32(width), WindowHeight: uint32(height)}})
}

func (p *Platform) closeCallback(w *glfw.Window) {
	p.push(core.NewQuitEvent())
}

func (p *Platform) joystickCallback(joy glfw.Joystick, event glfw.PeripheralEvent) {
	switch event {
	case glfw.Connected:
		p.push(core.Event{Type: core.EVENT_CODE_CONTROLLER_ADDED, Data: &core.ControllerEvent{DeviceID: int(joy), Name: joy.GetName()}})
	case glfw.Disconnected:
		p.push(core.Event{Type: core.EVENT_CODE_CONTROLLER_REMOVED, Data: &core.ControllerEvent{DeviceID: int(joy)}})
	}
}
