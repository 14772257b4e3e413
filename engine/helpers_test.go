package engine_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/spaghettifunk/leek/engine"
	"github.com/spaghettifunk/leek/engine/assets"
	"github.com/spaghettifunk/leek/engine/core"
	"github.com/spaghettifunk/leek/engine/textures"
	"github.com/stretchr/testify/require"
)

// fakeWindow replays one batch of events and one keyboard snapshot per frame.
type fakeWindow struct {
	events      [][]core.Event
	keys        []core.KeySet
	controllers map[int][]bool

	polls       int
	samples     int
	fullscreen  []bool
	clears      int
	presents    int
	presentErr  error
	cursorCalls int
}

func (w *fakeWindow) PollEvents() []core.Event {
	defer func() { w.polls++ }()
	if w.polls < len(w.events) {
		return w.events[w.polls]
	}
	return nil
}

func (w *fakeWindow) PressedKeys() core.KeySet {
	defer func() { w.samples++ }()
	if w.samples < len(w.keys) {
		return w.keys[w.samples]
	}
	return core.NewKeySet()
}

func (w *fakeWindow) MouseState() core.MouseState {
	return core.MouseState{X: 1, Y: 2}
}

func (w *fakeWindow) ControllerState(deviceID int) ([]bool, []float32, bool) {
	buttons, ok := w.controllers[deviceID]
	return buttons, []float32{0.25}, ok
}

func (w *fakeWindow) SetFullscreen(fullscreen bool) error {
	w.fullscreen = append(w.fullscreen, fullscreen)
	return nil
}

func (w *fakeWindow) SetCursorMode(hidden, relative bool) {
	w.cursorCalls++
}

func (w *fakeWindow) Size() (uint32, uint32) {
	return 320, 240
}

func (w *fakeWindow) Clear(core.Color) error {
	w.clears++
	return nil
}

func (w *fakeWindow) Present() error {
	w.presents++
	return w.presentErr
}

// scriptedScene returns its scripted actions in order, then quits.
type scriptedScene struct {
	engine.BaseScene

	name    string
	log     *[]string
	actions []engine.Action
	frame   int

	pressed  []bool
	lastCtx  *core.EngineContext
	disposed bool
}

func (s *scriptedScene) record(hook string) {
	*s.log = append(*s.log, s.name+"."+hook)
}

func (s *scriptedScene) SetUp() { s.record("setup") }

func (s *scriptedScene) Logic(ctx *core.EngineContext, e *engine.Engine) engine.Action {
	s.record("logic")
	s.lastCtx = ctx
	s.pressed = append(s.pressed, ctx.IsKeyPressed(core.KEY_A))
	if s.frame >= len(s.actions) {
		return engine.Quit()
	}
	a := s.actions[s.frame]
	s.frame++
	return a
}

func (s *scriptedScene) Render(*core.EngineContext, *engine.Engine) error {
	s.record("render")
	return nil
}

func (s *scriptedScene) OnCacheUpdated(*engine.Engine, assets.Reloaded) { s.record("cache") }
func (s *scriptedScene) OnPause()                                       { s.record("pause") }
func (s *scriptedScene) OnResume()                                      { s.record("resume") }
func (s *scriptedScene) Dispose()                                       { s.disposed = true }

func factoryOf(scene *scriptedScene) engine.SceneFactory {
	return func(*engine.Engine) (engine.Scene, error) {
		return scene, nil
	}
}

// steppingClock never sleeps: every reading moves time forward by one interval.
func steppingClock(interval time.Duration) *core.FrameClock {
	now := time.Unix(0, 0)
	return core.NewFrameClock(
		core.WithInterval(interval),
		core.WithTimeSource(
			func() time.Time {
				now = now.Add(interval)
				return now
			},
			func(d time.Duration) {
				panic(fmt.Sprintf("unexpected sleep of %s", d))
			},
		),
	)
}

func newTestEngine(t *testing.T, window engine.Window, mutate ...func(*engine.ApplicationConfig)) *engine.Engine {
	t.Helper()
	config := engine.DefaultConfig()
	config.Assets.Dir = t.TempDir()
	for _, m := range mutate {
		m(config)
	}

	manager, err := assets.NewManager(assets.Config{Dir: config.Assets.Dir}, textures.NewSoftwareCreator(), nil)
	require.NoError(t, err)

	e, err := engine.New(config, window, manager, engine.WithFrameClock(steppingClock(config.FrameInterval())))
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Shutdown() })
	return e
}

func writeTexture(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}
