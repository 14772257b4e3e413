package engine

import (
	"github.com/spaghettifunk/leek/engine/assets"
	"github.com/spaghettifunk/leek/engine/core"
)

// Scene is one interactive state of the game. Only the scene on top of the
// stack receives events, logic and render calls.
type Scene interface {
	// SetUp is called once, right after the scene is created and before it is pushed.
	SetUp()
	// ProcessEvent receives every raw event polled this frame.
	ProcessEvent(event core.Event)
	// Logic advances the scene and tells the engine what to do next.
	Logic(ctx *core.EngineContext, e *Engine) Action
	// Render draws the scene. An error stops the engine.
	Render(ctx *core.EngineContext, e *Engine) error
	// OnCacheUpdated is called after a hot reload replaced a cached asset.
	OnCacheUpdated(e *Engine, changed assets.Reloaded)
	// OnPause is called when another scene is pushed on top of this one.
	OnPause()
	// OnResume is called when this scene becomes the top again.
	OnResume()
}

// SceneFactory builds a scene. It runs exactly once, when the engine
// processes the action carrying it.
type SceneFactory func(e *Engine) (Scene, error)

// BaseScene implements every Scene hook as a no-op, to be embedded.
type BaseScene struct{}

func (BaseScene) SetUp()                                    {}
func (BaseScene) ProcessEvent(core.Event)                   {}
func (BaseScene) Logic(*core.EngineContext, *Engine) Action { return Nothing() }
func (BaseScene) Render(*core.EngineContext, *Engine) error { return nil }
func (BaseScene) OnCacheUpdated(*Engine, assets.Reloaded)   {}
func (BaseScene) OnPause()                                  {}
func (BaseScene) OnResume()                                 {}
