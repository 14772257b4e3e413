/*
Sample scenes used by the testbed binary to exercise the engine: a title
screen, a playable scene and a pause overlay pushed on top of it.
*/
package testbed

import (
	"fmt"
	"path/filepath"

	"github.com/spaghettifunk/leek/engine"
	"github.com/spaghettifunk/leek/engine/assets"
	"github.com/spaghettifunk/leek/engine/containers"
	"github.com/spaghettifunk/leek/engine/core"
	"github.com/spaghettifunk/leek/engine/fonts"
	"github.com/spaghettifunk/leek/engine/math"
	"github.com/spaghettifunk/leek/engine/textures"
)

const (
	backgroundPath = "textures/background.png"
	fontPath       = "fonts/font.png"
	jumpSoundPath  = "sounds/jump.wav"

	fontCellWidth  = 8
	fontCellHeight = 8

	// pixels per second
	playerSpeed = 240
)

// TitleScene waits for the player to start the game.
type TitleScene struct {
	engine.BaseScene

	manager *assets.Manager
	font    *containers.Shared[*fonts.BitmapFont]
	quads   []fonts.Quad
}

func NewTitleScene(e *engine.Engine) (engine.Scene, error) {
	return &TitleScene{manager: e.Assets}, nil
}

func (s *TitleScene) SetUp() {
	s.font = loadFont(s.manager)
}

func (s *TitleScene) Logic(ctx *core.EngineContext, e *engine.Engine) engine.Action {
	switch {
	case ctx.IsKeyPressed(core.KEY_ESCAPE):
		return engine.Quit()
	case ctx.IsKeyPressed(core.KEY_F):
		return engine.ToggleFullScreen()
	case ctx.IsKeyPressed(core.KEY_ENTER):
		return engine.SwitchToScene(NewPlayScene)
	}
	return engine.Nothing()
}

func (s *TitleScene) Render(ctx *core.EngineContext, e *engine.Engine) error {
	if s.font != nil {
		s.quads = s.font.Get().Layout("PRESS ENTER", 16, 16)
	}
	return nil
}

func (s *TitleScene) Dispose() {
	if s.font != nil {
		s.font.Release()
	}
}

// PlayScene moves a player around with the arrow keys.
type PlayScene struct {
	engine.BaseScene

	manager    *assets.Manager
	background *containers.Shared[*textures.Texture]
	font       *containers.Shared[*fonts.BitmapFont]

	Position math.Vec2
	Width    uint32
	Height   uint32
	Paused   bool
	Reloads  int
	jumps    int
	hud      []fonts.Quad
}

func NewPlayScene(e *engine.Engine) (engine.Scene, error) {
	width, height := e.Window.Size()
	return &PlayScene{
		manager:  e.Assets,
		Width:    width,
		Height:   height,
		Position: math.NewVec2(float64(width)/2, float64(height)/2),
	}, nil
}

func (s *PlayScene) SetUp() {
	s.background = loadTexture(s.manager, backgroundPath)
	s.font = loadFont(s.manager)
}

func (s *PlayScene) ProcessEvent(event core.Event) {
	if event.Type != core.EVENT_CODE_RESIZED {
		return
	}
	if se, ok := event.Data.(*core.SystemEvent); ok {
		s.Width, s.Height = se.WindowWidth, se.WindowHeight
	}
}

func (s *PlayScene) Logic(ctx *core.EngineContext, e *engine.Engine) engine.Action {
	switch {
	case ctx.IsKeyPressed(core.KEY_ESCAPE):
		return engine.SwitchToScene(NewTitleScene)
	case ctx.IsKeyPressed(core.KEY_P):
		return engine.PushScene(NewPauseScene)
	case ctx.IsKeyPressed(core.KEY_SPACE):
		s.jumps++
		if err := e.Assets.PlaySound(filepath.Join(s.manager.Root(), jumpSoundPath)); err != nil {
			core.LogDebug("no jump sound: %s", err)
		}
	}

	var dir math.Vec2
	if ctx.IsKeyDown(core.KEY_LEFT) {
		dir.X--
	}
	if ctx.IsKeyDown(core.KEY_RIGHT) {
		dir.X++
	}
	if ctx.IsKeyDown(core.KEY_UP) {
		dir.Y--
	}
	if ctx.IsKeyDown(core.KEY_DOWN) {
		dir.Y++
	}
	step := dir.Normalized().Scale(playerSpeed * ctx.DeltaTime.Seconds())
	s.Position = s.Position.Add(step).ClampTo(math.Vec2{}, math.NewVec2(float64(s.Width), float64(s.Height)))
	return engine.Nothing()
}

func (s *PlayScene) Render(ctx *core.EngineContext, e *engine.Engine) error {
	if s.font != nil {
		s.hud = s.font.Get().Layout(fmt.Sprintf("JUMPS %d\nFPS %d", s.jumps, e.Metrics.LatestFPS()), 4, 4)
	}
	return nil
}

func (s *PlayScene) OnCacheUpdated(e *engine.Engine, changed assets.Reloaded) {
	s.Reloads++
	if changed.Category != assets.CategoryTexture {
		return
	}
	if changed.Path != filepath.Join(s.manager.Root(), backgroundPath) {
		return
	}
	if s.background != nil {
		s.background.Release()
	}
	s.background = loadTexture(s.manager, backgroundPath)
}

func (s *PlayScene) OnPause()  { s.Paused = true }
func (s *PlayScene) OnResume() { s.Paused = false }

func (s *PlayScene) Dispose() {
	if s.background != nil {
		s.background.Release()
	}
	if s.font != nil {
		s.font.Release()
	}
}

// PauseScene sits on top of the play scene until resumed.
type PauseScene struct {
	engine.BaseScene
}

func NewPauseScene(e *engine.Engine) (engine.Scene, error) {
	return &PauseScene{}, nil
}

func (s *PauseScene) Logic(ctx *core.EngineContext, e *engine.Engine) engine.Action {
	switch {
	case ctx.IsKeyPressed(core.KEY_P), ctx.IsKeyPressed(core.KEY_ESCAPE):
		return engine.PopScene()
	case ctx.IsKeyPressed(core.KEY_Q):
		return engine.Quit()
	}
	return engine.Nothing()
}

// loadTexture fetches a texture relative to the asset root. A missing file
// is not fatal for the testbed.
func loadTexture(manager *assets.Manager, path string) *containers.Shared[*textures.Texture] {
	tex, err := manager.Texture(filepath.Join(manager.Root(), path))
	if err != nil {
		core.LogWarn("testbed texture unavailable: %s", err)
		return nil
	}
	return tex
}

func loadFont(manager *assets.Manager) *containers.Shared[*fonts.BitmapFont] {
	font, err := manager.BitmapFont(filepath.Join(manager.Root(), fontPath), fontCellWidth, fontCellHeight)
	if err != nil {
		core.LogWarn("testbed font unavailable: %s", err)
		return nil
	}
	return font
}
