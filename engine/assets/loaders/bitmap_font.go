package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/leek/engine/fonts"
	"github.com/spaghettifunk/leek/engine/textures"
)

// BitmapFontKey names a bitmap font: the font texture, or .fnt descriptor,
// and the char cell size used by fixed-cell fonts.
type BitmapFontKey struct {
	path       string
	CharWidth  uint32
	CharHeight uint32
}

func NewBitmapFontKey(path string, charWidth, charHeight uint32) BitmapFontKey {
	return BitmapFontKey{path: path, CharWidth: charWidth, CharHeight: charHeight}
}

func (k BitmapFontKey) Path() string {
	return k.path
}

func (k BitmapFontKey) String() string {
	return fmt.Sprintf("BitmapFontKey(%s, %dx%d)", k.path, k.CharWidth, k.CharHeight)
}

type BitmapFontLoader struct {
	Creator textures.Creator
}

func (fl *BitmapFontLoader) LoadResource(key BitmapFontKey) (*fonts.BitmapFont, error) {
	if strings.EqualFold(filepath.Ext(key.Path()), ".fnt") {
		return fonts.LoadFNT(key.Path(), fl.Creator)
	}

	texture, err := fl.Creator.LoadTexture(key.Path())
	if err != nil {
		return nil, err
	}
	return fonts.NewGridFont(texture, key.CharWidth, key.CharHeight)
}
