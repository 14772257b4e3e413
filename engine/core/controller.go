package core

const maxControllerButtons = 15
const maxControllerAxes = 6

// GameController is the sampled state of one connected gamepad.
type GameController struct {
	DeviceID int
	// Player is the slot assigned when the controller was plugged in.
	Player  uint32
	Name    string
	Buttons [maxControllerButtons]bool
	Axes    [maxControllerAxes]float32
}

func (gc GameController) IsButtonDown(button int) bool {
	if button < 0 || button >= maxControllerButtons {
		return false
	}
	return gc.Buttons[button]
}

func (gc GameController) Axis(axis int) float32 {
	if axis < 0 || axis >= maxControllerAxes {
		return 0
	}
	return gc.Axes[axis]
}

// ControllerManager tracks connected controllers keyed by device id.
type ControllerManager struct {
	controllers map[int]*GameController
	players     *SlotAllocator
}

func NewControllerManager() *ControllerManager {
	return &ControllerManager{
		controllers: make(map[int]*GameController),
		players:     NewSlotAllocator(4),
	}
}

// Added registers a controller; adding an already known device is a no-op.
func (m *ControllerManager) Added(deviceID int, name string) *GameController {
	if gc, ok := m.controllers[deviceID]; ok {
		return gc
	}
	gc := &GameController{DeviceID: deviceID, Name: name}
	gc.Player = m.players.Acquire(gc)
	m.controllers[deviceID] = gc
	LogInfo("Controller %d (%s) connected as player %d", deviceID, name, gc.Player)
	return gc
}

func (m *ControllerManager) Removed(deviceID int) {
	gc, ok := m.controllers[deviceID]
	if !ok {
		return
	}
	if err := m.players.Release(gc.Player); err != nil {
		LogWarn("%s", err)
	}
	delete(m.controllers, deviceID)
	LogInfo("Controller %d disconnected", deviceID)
}

// Update stores freshly sampled buttons and axes for a known device.
func (m *ControllerManager) Update(deviceID int, buttons []bool, axes []float32) {
	gc, ok := m.controllers[deviceID]
	if !ok {
		return
	}
	copy(gc.Buttons[:], buttons)
	copy(gc.Axes[:], axes)
}

func (m *ControllerManager) Len() int {
	return len(m.controllers)
}

// DeviceIDs returns the ids of the connected controllers.
func (m *ControllerManager) DeviceIDs() []int {
	ids := make([]int, 0, len(m.controllers))
	for id := range m.controllers {
		ids = append(ids, id)
	}
	return ids
}

// Snapshot returns a value copy of every controller, detached from later updates.
func (m *ControllerManager) Snapshot() map[int]GameController {
	out := make(map[int]GameController, len(m.controllers))
	for id, gc := range m.controllers {
		out[id] = *gc
	}
	return out
}
