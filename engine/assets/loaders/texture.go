package loaders

import (
	"github.com/spaghettifunk/leek/engine/resources"
	"github.com/spaghettifunk/leek/engine/textures"
)

// TextureKey names an image file loaded as a texture.
type TextureKey = resources.PathKey[*textures.Texture]

func NewTextureKey(path string) TextureKey {
	return resources.NewPathKey[*textures.Texture](path)
}

type TextureLoader struct {
	Creator textures.Creator
}

func (tl *TextureLoader) LoadResource(key TextureKey) (*textures.Texture, error) {
	return tl.Creator.LoadTexture(key.Path())
}
