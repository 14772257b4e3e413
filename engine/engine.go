package engine

import (
	"fmt"

	"github.com/spaghettifunk/leek/engine/assets"
	"github.com/spaghettifunk/leek/engine/core"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine completed initialization and waits for Run
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine left its loop
	EngineStageStopped
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// Engine holds every subsystem handle a scene may need. It is passed
// explicitly to scenes, there is no global engine state.
type Engine struct {
	Window      Window
	Assets      *assets.Manager
	Controllers *core.ControllerManager
	Metrics     *core.Metrics
	ClearColor  core.Color

	config       *ApplicationConfig
	currentStage Stage
	clock        *core.FrameClock
	keys         *core.KeyTracker
	stack        *SceneStack
	fullscreen   bool
	debug        *debugOverlay
}

// Option customises an Engine.
type Option func(*Engine)

// WithFrameClock replaces the clock pacing the loop.
func WithFrameClock(clock *core.FrameClock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

func New(config *ApplicationConfig, window Window, assetManager *assets.Manager, opts ...Option) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if window == nil {
		return nil, fmt.Errorf("engine needs a window")
	}
	if assetManager == nil {
		return nil, fmt.Errorf("engine needs an asset manager")
	}

	e := &Engine{
		Window:       window,
		Assets:       assetManager,
		Controllers:  core.NewControllerManager(),
		Metrics:      core.NewMetrics(),
		ClearColor:   config.ClearColor,
		config:       config,
		currentStage: EngineStageUninitialized,
		keys:         core.NewKeyTracker(),
		stack:        NewSceneStack(),
		fullscreen:   config.Fullscreen,
		debug:        &debugOverlay{enabled: config.Debug},
	}
	for _, o := range opts {
		o(e)
	}
	if e.clock == nil {
		e.clock = core.NewFrameClock(core.WithInterval(config.FrameInterval()))
	}

	window.SetCursorMode(config.HideCursor, config.RelativeCursor)
	e.currentStage = EngineStageInitialized
	return e, nil
}

func (e *Engine) Config() *ApplicationConfig {
	return e.config
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// Stack exposes the scene stack, mostly for inspection.
func (e *Engine) Stack() *SceneStack {
	return e.stack
}

func (e *Engine) IsFullscreen() bool {
	return e.fullscreen
}

// Run builds the entry scene, sets it up and drives the loop until a scene
// quits, the last scene pops or the window is closed. Graphics failures and
// scene factory failures end the loop with an error.
func (e *Engine) Run(entry SceneFactory) error {
	scene, err := e.buildScene(entry)
	if err != nil {
		return err
	}
	e.stack.Push(scene)

	e.currentStage = EngineStageRunning
	defer func() {
		e.currentStage = EngineStageStopped
	}()

	for {
		tick := e.clock.Tick()
		if tick.Skip {
			continue
		}
		if tick.HasFPS {
			e.Metrics.InsertFPS(tick.FPS)
			e.debug.onFPS(e.Metrics)
		}

		top, ok := e.stack.Top()
		if !ok {
			return nil
		}

		// EVENT HANDLING
		for _, event := range e.Window.PollEvents() {
			switch event.Type {
			case core.EVENT_CODE_APPLICATION_QUIT:
				core.LogInfo("Quit event received, shutting down.")
				return nil
			case core.EVENT_CODE_CONTROLLER_ADDED:
				if ce, ok := event.Controller(); ok {
					e.Controllers.Added(ce.DeviceID, ce.Name)
				}
			case core.EVENT_CODE_CONTROLLER_REMOVED:
				if ce, ok := event.Controller(); ok {
					e.Controllers.Removed(ce.DeviceID)
				}
			default:
				if event.Type == core.EVENT_CODE_KEY_RELEASED {
					if ke, ok := event.Key(); ok {
						e.debug.onKeyReleased(ke.KeyCode, e)
					}
				}
				top.ProcessEvent(event)
			}
		}

		if changed, ok := e.Assets.SyncResources(); ok {
			top.OnCacheUpdated(e, changed)
		}

		// LOGIC
		e.sampleControllers()
		keysSnapshot, newlyPressed := e.keys.Update(e.Window.PressedKeys())
		ctx := core.NewEngineContext(
			keysSnapshot,
			newlyPressed,
			tick.Delta,
			e.clock.Elapsed(),
			e.Window.MouseState(),
			e.Controllers.Snapshot(),
		)

		action := top.Logic(ctx, e)
		switch action.Kind {
		case ActionQuit:
			return nil
		case ActionToggleFullScreen:
			if err := e.Window.SetFullscreen(!e.fullscreen); err != nil {
				return fmt.Errorf("failed to toggle fullscreen: %w", err)
			}
			e.fullscreen = !e.fullscreen
		case ActionPopScene:
			e.stack.Pop()
			next, ok := e.stack.Top()
			if !ok {
				return nil
			}
			next.OnResume()
			continue
		case ActionPushScene:
			top.OnPause()
			next, err := e.buildScene(action.factory)
			if err != nil {
				return err
			}
			e.stack.Push(next)
			continue
		case ActionSwitchToScene:
			e.stack.Pop()
			next, err := e.buildScene(action.factory)
			if err != nil {
				return err
			}
			e.stack.Push(next)
			continue
		}

		// RENDERING
		if err := e.Window.Clear(e.ClearColor); err != nil {
			return fmt.Errorf("failed to clear the frame: %w", err)
		}
		if err := top.Render(ctx, e); err != nil {
			return fmt.Errorf("scene render failed: %w", err)
		}
		if err := e.Window.Present(); err != nil {
			return fmt.Errorf("failed to present the frame: %w", err)
		}
		e.Metrics.FrameRendered()
	}
}

func (e *Engine) buildScene(factory SceneFactory) (Scene, error) {
	if factory == nil {
		return nil, core.ErrNilScene
	}
	scene, err := factory(e)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	if scene == nil {
		return nil, core.ErrNilScene
	}
	scene.SetUp()
	return scene, nil
}

func (e *Engine) sampleControllers() {
	for _, id := range e.Controllers.DeviceIDs() {
		if buttons, axes, ok := e.Window.ControllerState(id); ok {
			e.Controllers.Update(id, buttons, axes)
		}
	}
}

// Shutdown drops every scene and releases the assets.
func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.stack.Clear()
	if err := e.Assets.Shutdown(); err != nil {
		return err
	}
	core.LogInfo("Engine shut down.")
	return nil
}
