package assets

import (
	"fmt"
	"image"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/leek/engine/assets/loaders"
	"github.com/spaghettifunk/leek/engine/audio"
	"github.com/spaghettifunk/leek/engine/containers"
	"github.com/spaghettifunk/leek/engine/core"
	"github.com/spaghettifunk/leek/engine/fonts"
	"github.com/spaghettifunk/leek/engine/resources"
	"github.com/spaghettifunk/leek/engine/textures"
)

type (
	TextureKey    = loaders.TextureKey
	SoundKey      = loaders.SoundKey
	BitmapFontKey = loaders.BitmapFontKey
)

// Category identifies one of the resource caches.
type Category int

const (
	CategoryTexture Category = iota
	CategoryBitmapFont
	CategorySound
)

func (c Category) String() string {
	switch c {
	case CategoryTexture:
		return "texture"
	case CategoryBitmapFont:
		return "bitmap font"
	case CategorySound:
		return "sound"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Reloaded names the cache entry replaced by a hot reload.
type Reloaded struct {
	Category Category
	Path     string
}

func (r Reloaded) TextureKey() TextureKey {
	return loaders.NewTextureKey(r.Path)
}

func (r Reloaded) SoundKey() SoundKey {
	return loaders.NewSoundKey(r.Path)
}

// category binds one cache to the loader able to fill it.
type category[K resources.CacheKey, T any] struct {
	*resources.HashCache[K, T]
	resources.Loader[K, T]
}

func newCategory[K resources.CacheKey, T any](loader resources.Loader[K, T]) *category[K, T] {
	return &category[K, T]{
		HashCache: resources.NewHashCache[K, T](),
		Loader:    loader,
	}
}

// reload replaces the entry at key with a freshly loaded value. Holders of
// the previous value keep it, only later lookups see the new one.
func (c *category[K, T]) reload(key K) error {
	value, err := c.LoadResource(key)
	if err != nil {
		return err
	}
	if prev, ok := c.Insert(key, value); ok {
		prev.Release()
	}
	return nil
}

type Config struct {
	// Dir is the asset root watched for changes. It is created when missing.
	Dir string
	// WatchBuffer is the number of filesystem events queued before the watcher blocks.
	WatchBuffer uint
}

// Option customises a Manager.
type Option func(*Manager)

// WithTextureLoader replaces the loader used for textures, including by
// hot reload and PreloadTextures.
func WithTextureLoader(l resources.Loader[TextureKey, *textures.Texture]) Option {
	return func(m *Manager) { m.textures.Loader = l }
}

// WithSoundLoader replaces the loader used for sounds.
func WithSoundLoader(l resources.Loader[SoundKey, *audio.Buffer]) Option {
	return func(m *Manager) { m.sounds.Loader = l }
}

// WithBitmapFontLoader replaces the loader used for bitmap fonts.
func WithBitmapFontLoader(l resources.Loader[BitmapFontKey, *fonts.BitmapFont]) Option {
	return func(m *Manager) { m.fonts.Loader = l }
}

// Manager owns every cacheable engine asset, one cache per category, and
// turns filesystem changes into cache reloads. It is meant to be used from
// the engine loop only.
type Manager struct {
	InspectWindow bool

	textures *category[TextureKey, *textures.Texture]
	fonts    *category[BitmapFontKey, *fonts.BitmapFont]
	sounds   *category[SoundKey, *audio.Buffer]

	textureCreator textures.Creator
	audioContext   audio.Context

	root     string
	fsnotify *fsnotify.Watcher
	isClosed bool
}

// NewManager creates the caches and installs a recursive watch on config.Dir.
// Failing to watch is fatal for the caller.
func NewManager(config Config, creator textures.Creator, audioContext audio.Context, opts ...Option) (*Manager, error) {
	if config.Dir == "" {
		config.Dir = "assets"
	}
	if config.WatchBuffer == 0 {
		config.WatchBuffer = 64
	}
	if err := os.MkdirAll(config.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create assets folder: %w", err)
	}

	fsWatch, err := fsnotify.NewBufferedWatcher(config.WatchBuffer)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		textures:       newCategory[TextureKey, *textures.Texture](&loaders.TextureLoader{Creator: creator}),
		fonts:          newCategory[BitmapFontKey, *fonts.BitmapFont](&loaders.BitmapFontLoader{Creator: creator}),
		sounds:         newCategory[SoundKey, *audio.Buffer](&loaders.SoundLoader{Context: audioContext}),
		textureCreator: creator,
		audioContext:   audioContext,
		root:           config.Dir,
		fsnotify:       fsWatch,
	}
	for _, o := range opts {
		o(m)
	}

	if err := m.addRecursive(config.Dir); err != nil {
		fsWatch.Close()
		return nil, err
	}
	core.LogInfo("Asset manager watching '%s'.", config.Dir)
	return m, nil
}

// Root returns the watched asset directory.
func (m *Manager) Root() string {
	return m.root
}

func (m *Manager) Textures() resources.LoadCache[TextureKey, *textures.Texture] {
	return m.textures
}

func (m *Manager) BitmapFonts() resources.LoadCache[BitmapFontKey, *fonts.BitmapFont] {
	return m.fonts
}

func (m *Manager) Sounds() resources.LoadCache[SoundKey, *audio.Buffer] {
	return m.sounds
}

// Texture returns the texture stored at path, loading it on first use.
// The returned handle must be released by the caller.
func (m *Manager) Texture(path string) (*containers.Shared[*textures.Texture], error) {
	return resources.GetOrLoad[TextureKey, *textures.Texture](m.textures, loaders.NewTextureKey(path))
}

// BitmapFont returns the font at path with the given cell size, loading it on first use.
func (m *Manager) BitmapFont(path string, charWidth, charHeight uint32) (*containers.Shared[*fonts.BitmapFont], error) {
	return resources.GetOrLoad[BitmapFontKey, *fonts.BitmapFont](m.fonts, loaders.NewBitmapFontKey(path, charWidth, charHeight))
}

// Sound returns the decoded sound at path, loading it on first use.
func (m *Manager) Sound(path string) (*containers.Shared[*audio.Buffer], error) {
	return resources.GetOrLoad[SoundKey, *audio.Buffer](m.sounds, loaders.NewSoundKey(path))
}

// PlaySound plays a cached sound on the audio context, loading it if needed.
func (m *Manager) PlaySound(path string) error {
	if m.audioContext == nil {
		return fmt.Errorf("no audio context available")
	}
	sound, err := m.Sound(path)
	if err != nil {
		return err
	}
	defer sound.Release()
	m.audioContext.Play(sound.Get().Streamer())
	return nil
}

// SyncResources handles at most one pending filesystem event without blocking.
// A write to a file matching a cached texture reloads it; otherwise a
// matching sound is reloaded. The reloaded entry is returned so the active
// scene can be told about it. Reload failures keep the stale entry and are
// only logged.
func (m *Manager) SyncResources() (Reloaded, bool) {
	if m.isClosed {
		return Reloaded{}, false
	}
	select {
	case e, ok := <-m.fsnotify.Events:
		if !ok {
			return Reloaded{}, false
		}
		return m.handleEvent(e)
	case err, ok := <-m.fsnotify.Errors:
		if ok {
			core.LogDebug("asset watcher: %s", err)
		}
		return Reloaded{}, false
	default:
		return Reloaded{}, false
	}
}

func (m *Manager) handleEvent(e fsnotify.Event) (Reloaded, bool) {
	if e.Has(fsnotify.Create) {
		if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
			if err := m.watchRecursive(e.Name, false); err != nil {
				core.LogWarn("failed to watch new folder '%s': %s", e.Name, err)
			}
		}
	}
	// Can't stat a deleted path, just try to drop it from the watch list.
	if e.Has(fsnotify.Remove) {
		_ = m.fsnotify.Remove(e.Name)
	}
	if !e.Has(fsnotify.Write) {
		return Reloaded{}, false
	}

	if key, ok := m.textures.FindBySuffix(e.Name); ok {
		if err := m.textures.reload(key); err == nil {
			core.LogInfo("Reloaded %s", key.Path())
			return Reloaded{Category: CategoryTexture, Path: key.Path()}, true
		} else {
			core.LogError("Error during reloading %s: %s", key.Path(), err)
		}
	}

	if key, ok := m.sounds.FindBySuffix(e.Name); ok {
		if err := m.sounds.reload(key); err == nil {
			core.LogInfo("Reloaded %s", key.Path())
			return Reloaded{Category: CategorySound, Path: key.Path()}, true
		} else {
			core.LogError("Error during reloading %s: %s", key.Path(), err)
		}
	}
	return Reloaded{}, false
}

// DefaultPixelFormat returns the pixel format textures are created with by default.
func (m *Manager) DefaultPixelFormat() textures.PixelFormat {
	return m.textureCreator.DefaultPixelFormat()
}

func (m *Manager) CreateTexture(format textures.PixelFormat, access textures.Access, width, height uint32) (*textures.Texture, error) {
	return m.textureCreator.CreateTexture(format, access, width, height)
}

func (m *Manager) CreateTextureStatic(format textures.PixelFormat, width, height uint32) (*textures.Texture, error) {
	return m.textureCreator.CreateTexture(format, textures.AccessStatic, width, height)
}

func (m *Manager) CreateTextureStreaming(format textures.PixelFormat, width, height uint32) (*textures.Texture, error) {
	return m.textureCreator.CreateTexture(format, textures.AccessStreaming, width, height)
}

func (m *Manager) CreateTextureTarget(format textures.PixelFormat, width, height uint32) (*textures.Texture, error) {
	return m.textureCreator.CreateTexture(format, textures.AccessTarget, width, height)
}

func (m *Manager) CreateTextureFromImage(img image.Image) (*textures.Texture, error) {
	return m.textureCreator.CreateTextureFromImage(img)
}

// DropUnused evicts every entry no longer referenced outside the caches.
func (m *Manager) DropUnused() {
	m.textures.DropUnused()
	m.fonts.DropUnused()
	m.sounds.DropUnused()
}

// Clear empties every cache.
func (m *Manager) Clear() {
	m.textures.Clear()
	m.fonts.Clear()
	m.sounds.Clear()
}

// Shutdown stops watching and empties the caches.
func (m *Manager) Shutdown() error {
	if m.isClosed {
		return nil
	}
	m.isClosed = true
	m.Clear()
	return m.fsnotify.Close()
}
