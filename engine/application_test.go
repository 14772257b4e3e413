package engine_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/leek/engine"
	"github.com/spaghettifunk/leek/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leek.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
name = "Demo"
start_width = 1280
start_height = 720
target_fps = 30
log_level = "debug"
debug = true
clear_color = { r = 10, g = 20, b = 30, a = 255 }

[assets]
dir = "data"
`)

	config, err := engine.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Demo", config.Name)
	assert.Equal(t, uint32(1280), config.StartWidth)
	assert.Equal(t, core.DebugLevel, config.LogLevel)
	assert.True(t, config.Debug)
	assert.Equal(t, core.Color{R: 10, G: 20, B: 30, A: 255}, config.ClearColor)
	assert.Equal(t, "data", config.Assets.Dir)
	// untouched keys keep their defaults
	assert.Equal(t, uint32(100), config.StartPosX)
	assert.Equal(t, uint(64), config.Assets.WatchBuffer)
	assert.Equal(t, time.Second/30, config.FrameInterval())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := engine.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = engine.LoadConfig(writeConfig(t, `unknown_key = 1`))
	assert.Error(t, err)

	_, err = engine.LoadConfig(writeConfig(t, `start_width = 0`))
	assert.ErrorContains(t, err, "window size")

	_, err = engine.LoadConfig(writeConfig(t, `logical_width = 320`))
	assert.ErrorContains(t, err, "logical size")
}

func TestDefaultConfig(t *testing.T) {
	config := engine.DefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, time.Second/60, config.FrameInterval())
}
