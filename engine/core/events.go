package core

// Event codes emitted by the platform layer. Application codes should start beyond 255.
type EventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Mouse button pressed.
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04

	// Mouse button released.
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05

	// Mouse moved.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06

	// Mouse wheel scrolled.
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07

	// Resized/resolution changed from the OS.
	EVENT_CODE_RESIZED EventCode = 0x08

	// A game controller was plugged in.
	EVENT_CODE_CONTROLLER_ADDED EventCode = 0x09

	// A game controller was unplugged.
	EVENT_CODE_CONTROLLER_REMOVED EventCode = 0x0A

	MAX_EVENT_CODE EventCode = 0xFF
)

// Event is a raw OS event as polled by the platform. Data holds one of the
// payload types below, or nil.
type Event struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
	Repeat  bool
}

type MouseEvent struct {
	Button Button
	PosX   int32
	PosY   int32
	Scroll int8
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type ControllerEvent struct {
	// DeviceID is the platform identifier of the joystick.
	DeviceID int
	Name     string
}

func NewQuitEvent() Event {
	return Event{Type: EVENT_CODE_APPLICATION_QUIT}
}

func NewKeyEvent(key KeyCode, pressed bool) Event {
	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	return Event{Type: code, Data: &KeyEvent{KeyCode: key}}
}

// Key returns the key payload if the event is a key event.
func (e Event) Key() (*KeyEvent, bool) {
	ke, ok := e.Data.(*KeyEvent)
	return ke, ok
}

// Controller returns the controller payload if the event is a controller event.
func (e Event) Controller() (*ControllerEvent, bool) {
	ce, ok := e.Data.(*ControllerEvent)
	return ce, ok
}
