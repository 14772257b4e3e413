package fonts_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/leek/engine/fonts"
	"github.com/spaghettifunk/leek/engine/textures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridTexture(t *testing.T, w, h uint32) *textures.Texture {
	t.Helper()
	tex, err := textures.NewSoftwareCreator().CreateTexture(textures.PixelFormatRGBA8888, textures.AccessStatic, w, h)
	require.NoError(t, err)
	tex.Name = "font.png"
	return tex
}

func TestNewGridFont_Validation(t *testing.T) {
	tex := gridTexture(t, 128, 48)

	_, err := fonts.NewGridFont(tex, 0, 8)
	assert.Error(t, err)
	_, err = fonts.NewGridFont(tex, 256, 8)
	assert.Error(t, err)

	font, err := fonts.NewGridFont(tex, 8, 8)
	require.NoError(t, err)
	assert.Equal(t, "font.png", font.Name)
	assert.Equal(t, int32(8), font.LineHeight)
	assert.Equal(t, tex.ByteSize(), font.VRAMSize())
}

func TestGridFont_Layout(t *testing.T) {
	font, err := fonts.NewGridFont(gridTexture(t, 128, 48), 8, 8)
	require.NoError(t, err)

	quads := font.Layout("A!\nB", 10, 20)
	require.Len(t, quads, 3)

	// 'A' is the 34th printable char: second column of the third row
	assert.Equal(t, fonts.Rect{X: 8, Y: 16, Width: 8, Height: 8}, quads[0].Source)
	assert.Equal(t, fonts.Rect{X: 10, Y: 20, Width: 8, Height: 8}, quads[0].Dest)

	assert.Equal(t, fonts.Rect{X: 8, Y: 0, Width: 8, Height: 8}, quads[1].Source)
	assert.Equal(t, int32(18), quads[1].Dest.X)

	// new line resets the column
	assert.Equal(t, int32(10), quads[2].Dest.X)
	assert.Equal(t, int32(28), quads[2].Dest.Y)
}

func TestGridFont_NonPrintableAdvances(t *testing.T) {
	font, err := fonts.NewGridFont(gridTexture(t, 128, 48), 8, 8)
	require.NoError(t, err)

	quads := font.Layout("a\tb", 0, 0)
	require.Len(t, quads, 2)
	assert.Equal(t, int32(16), quads[1].Dest.X)
}

func TestBitmapFont_SetColor(t *testing.T) {
	tex := gridTexture(t, 64, 64)
	font, err := fonts.NewGridFont(tex, 8, 8)
	require.NoError(t, err)

	font.SetColor(10, 20, 30)
	assert.Equal(t, [3]uint8{10, 20, 30}, tex.ColorMod)
}

const tinyFNT = `info face="tiny" size=8
common lineHeight=11 base=8 scaleW=16 scaleH=8 pages=1
page id=0 file="tiny.png"
chars count=2
char id=65 x=0 y=0 width=4 height=8 xoffset=0 yoffset=1 xadvance=5 page=0
char id=66 x=5 y=0 width=4 height=8 xoffset=0 yoffset=1 xadvance=5 page=0
kernings count=1
kerning first=65 second=66 amount=-1
`

// writeTinyFont writes a two glyph AngelCode font and its page into dir.
func writeTinyFont(t *testing.T, dir string) string {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, "tiny.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 16, 8))))
	require.NoError(t, f.Close())

	path := filepath.Join(dir, "tiny.fnt")
	require.NoError(t, os.WriteFile(path, []byte(tinyFNT), 0o644))
	return path
}

func TestLoadFNT(t *testing.T) {
	path := writeTinyFont(t, t.TempDir())

	font, err := fonts.LoadFNT(path, textures.NewSoftwareCreator())
	require.NoError(t, err)
	assert.Equal(t, "tiny", font.Name)
	assert.Equal(t, int32(11), font.LineHeight)
	require.Len(t, font.Pages, 1)
	assert.Equal(t, uint32(16), font.Pages[0].Width)
	assert.Equal(t, font.Pages[0].ByteSize(), font.VRAMSize())

	quads := font.Layout("AB\nA", 0, 0)
	require.Len(t, quads, 3)

	assert.Equal(t, fonts.Rect{X: 0, Y: 1, Width: 4, Height: 8}, quads[0].Dest)
	assert.Equal(t, fonts.Rect{X: 5, Y: 0, Width: 4, Height: 8}, quads[1].Source)
	// A advances 5, the A-B pair pulls B back by one
	assert.Equal(t, int32(4), quads[1].Dest.X)

	assert.Equal(t, int32(0), quads[2].Dest.X)
	assert.Equal(t, int32(12), quads[2].Dest.Y, "line height plus the glyph y offset")
}

func TestLoadFNT_MissingPage(t *testing.T) {
	dir := t.TempDir()
	path := writeTinyFont(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "tiny.png")))

	_, err := fonts.LoadFNT(path, textures.NewSoftwareCreator())
	assert.Error(t, err)
}
