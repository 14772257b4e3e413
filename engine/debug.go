package engine

import (
	"github.com/spaghettifunk/leek/engine/assets"
	"github.com/spaghettifunk/leek/engine/core"
)

// debugOverlay reacts to the debug hotkeys: F12 dumps the resource
// inspector, F10 evicts unused cache entries, F11 toggles FPS reporting.
type debugOverlay struct {
	enabled   bool
	statsOpen bool
}

func (d *debugOverlay) onKeyReleased(key core.KeyCode, e *Engine) {
	if !d.enabled {
		return
	}
	switch key {
	case core.KEY_F12:
		e.Assets.InspectWindow = !e.Assets.InspectWindow
		if e.Assets.InspectWindow {
			core.LogInfo("Resources\n%s", assets.RenderReport(e.Assets.Inspect()))
		}
	case core.KEY_F11:
		d.statsOpen = !d.statsOpen
	case core.KEY_F10:
		e.Assets.DropUnused()
		core.LogInfo("Dropped unused resources")
	}
}

func (d *debugOverlay) onFPS(m *core.Metrics) {
	if !d.enabled || !d.statsOpen {
		return
	}
	core.Logger().Info("frame stats", "fps", m.LatestFPS(), "highest", m.HighestFPS(), "avg", m.AverageFPS())
}
