package engine

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/leek/engine/core"
)

type ApplicationConfig struct {
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// Logical render size, zero means the window size.
	LogicalWidth   uint32     `toml:"logical_width"`
	LogicalHeight  uint32     `toml:"logical_height"`
	Fullscreen     bool       `toml:"fullscreen"`
	HideCursor     bool       `toml:"hide_cursor"`
	RelativeCursor bool       `toml:"relative_cursor"`
	ClearColor     core.Color `toml:"clear_color"`
	// TargetFPS drives the fixed logic step.
	TargetFPS uint32        `toml:"target_fps"`
	LogLevel  core.LogLevel `toml:"log_level"`
	// Debug enables the inspector and frame stats hotkeys.
	Debug  bool         `toml:"debug"`
	Assets AssetsConfig `toml:"assets"`
}

type AssetsConfig struct {
	Dir         string `toml:"dir"`
	WatchBuffer uint   `toml:"watch_buffer"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "Leek",
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  800,
		StartHeight: 600,
		ClearColor:  core.RGB(0, 0, 0),
		TargetFPS:   60,
		LogLevel:    core.InfoLevel,
		Assets: AssetsConfig{
			Dir:         "assets",
			WatchBuffer: 64,
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (*ApplicationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", path, err)
	}
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.StartWidth == 0 || c.StartHeight == 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.StartWidth, c.StartHeight)
	}
	if (c.LogicalWidth == 0) != (c.LogicalHeight == 0) {
		return fmt.Errorf("logical size needs both width and height")
	}
	if c.TargetFPS == 0 {
		return fmt.Errorf("target_fps must be positive")
	}
	return nil
}

// FrameInterval returns the fixed logic step derived from TargetFPS.
func (c *ApplicationConfig) FrameInterval() time.Duration {
	if c.TargetFPS == 0 {
		return core.DefaultFrameInterval
	}
	return time.Second / time.Duration(c.TargetFPS)
}
