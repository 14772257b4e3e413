package assets

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/spaghettifunk/leek/engine/assets/loaders"
	"github.com/spaghettifunk/leek/engine/core"
	"github.com/spaghettifunk/leek/engine/textures"
)

// PreloadTextures caches the given images as textures. With the default
// texture loader decoding runs on worker goroutines while texture creation
// and cache insertion stay on the calling goroutine. A loader installed with
// WithTextureLoader is called sequentially instead, so preloaded and lazily
// loaded entries are built the same way. Paths already cached are skipped.
func (m *Manager) PreloadTextures(ctx context.Context, paths ...string) error {
	keys := make([]TextureKey, 0, len(paths))
	for _, p := range paths {
		key := loaders.NewTextureKey(p)
		if m.textures.Contains(key) {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil
	}

	tl, ok := m.textures.Loader.(*loaders.TextureLoader)
	if !ok {
		for _, key := range keys {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := m.textures.reload(key); err != nil {
				return err
			}
		}
		core.LogDebug("Preloaded %d textures", len(keys))
		return nil
	}

	images := make([]image.Image, len(keys))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, key := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := textures.DecodeImage(key.Path())
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, key := range keys {
		t, err := tl.Creator.CreateTextureFromImage(images[i])
		if err != nil {
			return err
		}
		t.Name = key.Path()
		if prev, ok := m.textures.Insert(key, t); ok {
			prev.Release()
		}
	}
	core.LogDebug("Preloaded %d textures", len(keys))
	return nil
}
