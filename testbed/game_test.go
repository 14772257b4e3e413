package testbed_test

import (
	"testing"
	"time"

	"github.com/spaghettifunk/leek/engine"
	"github.com/spaghettifunk/leek/engine/assets"
	"github.com/spaghettifunk/leek/engine/core"
	"github.com/spaghettifunk/leek/engine/math"
	"github.com/spaghettifunk/leek/engine/mocks"
	"github.com/spaghettifunk/leek/engine/textures"
	"github.com/spaghettifunk/leek/testbed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	ctrl := gomock.NewController(t)
	window := mocks.NewMockWindow(ctrl)
	window.EXPECT().SetCursorMode(gomock.Any(), gomock.Any()).AnyTimes()
	window.EXPECT().Size().Return(uint32(200), uint32(100)).AnyTimes()

	manager, err := assets.NewManager(assets.Config{Dir: t.TempDir()}, textures.NewSoftwareCreator(), nil)
	require.NoError(t, err)
	e, err := engine.New(engine.DefaultConfig(), window, manager)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Shutdown() })
	return e
}

func frame(held, pressed core.KeySet) *core.EngineContext {
	return core.NewEngineContext(held, pressed, 100*time.Millisecond, time.Second, core.MouseState{}, nil)
}

func press(keys ...core.KeyCode) *core.EngineContext {
	return frame(core.NewKeySet(keys...), core.NewKeySet(keys...))
}

func TestTitleScene(t *testing.T) {
	e := newEngine(t)
	scene, err := testbed.NewTitleScene(e)
	require.NoError(t, err)
	scene.SetUp()

	assert.Equal(t, engine.ActionNothing, scene.Logic(press(), e).Kind)
	assert.Equal(t, engine.ActionSwitchToScene, scene.Logic(press(core.KEY_ENTER), e).Kind)
	assert.Equal(t, engine.ActionToggleFullScreen, scene.Logic(press(core.KEY_F), e).Kind)
	assert.Equal(t, engine.ActionQuit, scene.Logic(press(core.KEY_ESCAPE), e).Kind)
	assert.NoError(t, scene.Render(press(), e))
}

func TestPlayScene_Movement(t *testing.T) {
	e := newEngine(t)
	scene, err := testbed.NewPlayScene(e)
	require.NoError(t, err)
	scene.SetUp()
	play := scene.(*testbed.PlayScene)

	assert.Equal(t, math.NewVec2(100, 50), play.Position)

	// held keys move every frame, 240 px/s over a 100ms step
	right := frame(core.NewKeySet(core.KEY_RIGHT), core.NewKeySet())
	assert.Equal(t, engine.ActionNothing, play.Logic(right, e).Kind)
	assert.InDelta(t, 124.0, play.Position.X, 0.001)
	assert.InDelta(t, 50.0, play.Position.Y, 0.001)

	// diagonals are not faster
	diagonal := frame(core.NewKeySet(core.KEY_RIGHT, core.KEY_UP), core.NewKeySet())
	before := play.Position
	play.Logic(diagonal, e)
	assert.InDelta(t, 24.0, play.Position.Sub(before).Length(), 0.001)

	// clamped to the window
	for i := 0; i < 10; i++ {
		play.Logic(diagonal, e)
	}
	assert.Equal(t, math.NewVec2(200, 0), play.Position)

	play.ProcessEvent(core.Event{Type: core.EVENT_CODE_RESIZED, Data: &core.SystemEvent{WindowWidth: 50, WindowHeight: 50}})
	play.Logic(right, e)
	assert.Equal(t, 50.0, play.Position.X)
}

func TestPlayScene_Transitions(t *testing.T) {
	e := newEngine(t)
	scene, err := testbed.NewPlayScene(e)
	require.NoError(t, err)
	scene.SetUp()

	assert.Equal(t, engine.ActionPushScene, scene.Logic(press(core.KEY_P), e).Kind)
	assert.Equal(t, engine.ActionSwitchToScene, scene.Logic(press(core.KEY_ESCAPE), e).Kind)
	// no audio device in tests, the jump still counts
	assert.Equal(t, engine.ActionNothing, scene.Logic(press(core.KEY_SPACE), e).Kind)

	play := scene.(*testbed.PlayScene)
	play.OnPause()
	assert.True(t, play.Paused)
	play.OnResume()
	assert.False(t, play.Paused)

	play.OnCacheUpdated(e, assets.Reloaded{Category: assets.CategorySound, Path: "x.wav"})
	assert.Equal(t, 1, play.Reloads)
	assert.NoError(t, play.Render(press(), e))
	play.Dispose()
}

func TestPauseScene(t *testing.T) {
	e := newEngine(t)
	scene, err := testbed.NewPauseScene(e)
	require.NoError(t, err)

	assert.Equal(t, engine.ActionNothing, scene.Logic(press(), e).Kind)
	assert.Equal(t, engine.ActionPopScene, scene.Logic(press(core.KEY_P), e).Kind)
	assert.Equal(t, engine.ActionPopScene, scene.Logic(press(core.KEY_ESCAPE), e).Kind)
	assert.Equal(t, engine.ActionQuit, scene.Logic(press(core.KEY_Q), e).Kind)
}
