package core_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/spaghettifunk/leek/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineContext(t *testing.T) {
	mouse := core.MouseState{X: 10, Y: 20}
	ctx := core.NewEngineContext(
		core.NewKeySet(core.KEY_A, core.KEY_B),
		core.NewKeySet(core.KEY_B),
		16*time.Millisecond,
		2*time.Second,
		mouse,
		nil,
	)

	assert.True(t, ctx.IsKeyDown(core.KEY_A))
	assert.False(t, ctx.IsKeyPressed(core.KEY_A))
	assert.True(t, ctx.IsKeyPressed(core.KEY_B))
	assert.Equal(t, []core.KeyCode{core.KEY_A, core.KEY_B}, ctx.HeldKeys())
	assert.Equal(t, []core.KeyCode{core.KEY_B}, ctx.PressedKeys())
	assert.Equal(t, uint32(16), ctx.DeltaMillis())
	assert.Equal(t, uint64(2000), ctx.ElapsedMillis())
	assert.Equal(t, mouse, ctx.MouseState())
}

func TestEngineContext_NilSets(t *testing.T) {
	ctx := core.NewEngineContext(nil, nil, 0, 0, core.MouseState{}, nil)
	assert.False(t, ctx.IsKeyDown(core.KEY_A))
	assert.Empty(t, ctx.PressedKeys())
}

func TestEventPayloads(t *testing.T) {
	e := core.NewKeyEvent(core.KEY_Q, true)
	assert.Equal(t, core.EVENT_CODE_KEY_PRESSED, e.Type)
	ke, ok := e.Key()
	require.True(t, ok)
	assert.Equal(t, core.KEY_Q, ke.KeyCode)

	_, ok = e.Controller()
	assert.False(t, ok)

	assert.Equal(t, core.EVENT_CODE_KEY_RELEASED, core.NewKeyEvent(core.KEY_Q, false).Type)
	assert.Equal(t, core.EVENT_CODE_APPLICATION_QUIT, core.NewQuitEvent().Type)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	core.SetLogOutput(&buf)
	t.Cleanup(func() {
		core.SetLogOutput(nil)
		_ = core.SetLogLevel(core.InfoLevel)
	})

	require.NoError(t, core.SetLogLevel(core.WarnLevel))
	core.LogInfo("hidden %d", 1)
	core.LogWarn("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden 1")
	assert.Contains(t, buf.String(), "shown 2")

	assert.Error(t, core.SetLogLevel("loud"))
}
