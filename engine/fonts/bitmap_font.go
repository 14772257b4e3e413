package fonts

import (
	"fmt"
	"path/filepath"

	"github.com/fzipp/bmfont"
	"github.com/spaghettifunk/leek/engine/textures"
)

// Rect is a region of a texture, in texels.
type Rect struct {
	X, Y          int32
	Width, Height uint32
}

// Glyph places one character inside the font pages.
type Glyph struct {
	Source   Rect
	Page     int
	XOffset  int32
	YOffset  int32
	XAdvance int32
}

// Quad is one textured rectangle produced when laying out text.
type Quad struct {
	Page   int
	Source Rect
	Dest   Rect
}

// BitmapFont renders text out of pre-rendered glyph textures. Fixed-cell
// fonts are built from a single texture laid out as a grid of printable
// ASCII characters starting at ' '. AngelCode fonts come from a .fnt file.
type BitmapFont struct {
	Name       string
	Pages      []*textures.Texture
	LineHeight int32
	charWidth  uint32
	charHeight uint32
	glyphs     map[rune]Glyph
	kerning    map[[2]rune]int32
}

// NewGridFont builds a fixed-cell font from a texture.
func NewGridFont(texture *textures.Texture, charWidth, charHeight uint32) (*BitmapFont, error) {
	if charWidth == 0 || charHeight == 0 {
		return nil, fmt.Errorf("invalid char size %dx%d", charWidth, charHeight)
	}
	if texture.Width < charWidth {
		return nil, fmt.Errorf("texture '%s' is narrower than one char", texture.Name)
	}
	return &BitmapFont{
		Name:       texture.Name,
		Pages:      []*textures.Texture{texture},
		LineHeight: int32(charHeight),
		charWidth:  charWidth,
		charHeight: charHeight,
	}, nil
}

// LoadFNT reads an AngelCode bitmap font descriptor and loads its page textures
// with creator, relative to the descriptor's directory.
func LoadFNT(path string, creator textures.Creator) (*BitmapFont, error) {
	font, err := bmfont.Load(path)
	if err != nil {
		return nil, err
	}
	desc := font.Descriptor

	bf := &BitmapFont{
		Name:       desc.Info.Face,
		LineHeight: int32(desc.Common.LineHeight),
		glyphs:     make(map[rune]Glyph, len(desc.Chars)),
		kerning:    make(map[[2]rune]int32, len(desc.Kerning)),
	}

	pageCount := 0
	for id := range desc.Pages {
		if id+1 > pageCount {
			pageCount = id + 1
		}
	}
	bf.Pages = make([]*textures.Texture, pageCount)
	for id, p := range desc.Pages {
		t, err := creator.LoadTexture(filepath.Join(filepath.Dir(path), p.File))
		if err != nil {
			return nil, fmt.Errorf("font '%s' page %d: %w", path, id, err)
		}
		bf.Pages[id] = t
	}

	for _, g := range desc.Chars {
		bf.glyphs[rune(g.ID)] = Glyph{
			Source:   Rect{X: int32(g.X), Y: int32(g.Y), Width: uint32(g.Width), Height: uint32(g.Height)},
			Page:     int(g.Page),
			XOffset:  int32(g.XOffset),
			YOffset:  int32(g.YOffset),
			XAdvance: int32(g.XAdvance),
		}
	}
	for pair, k := range desc.Kerning {
		bf.kerning[[2]rune{rune(pair.First), rune(pair.Second)}] = int32(k.Amount)
	}
	return bf, nil
}

// SetColor tints every page of the font.
func (bf *BitmapFont) SetColor(r, g, b uint8) {
	for _, p := range bf.Pages {
		if p != nil {
			p.SetColorMod(r, g, b)
		}
	}
}

// VRAMSize estimates the video memory used by the font pages.
func (bf *BitmapFont) VRAMSize() uint64 {
	var size uint64
	for _, p := range bf.Pages {
		if p != nil {
			size += p.ByteSize()
		}
	}
	return size
}

// Layout computes the quads needed to draw text with its top-left corner at (x, y).
// '\n' starts a new line.
func (bf *BitmapFont) Layout(text string, x, y int32) []Quad {
	if bf.glyphs == nil {
		return bf.layoutGrid(text, x, y)
	}

	quads := make([]Quad, 0, len(text))
	penX, penY := x, y
	var prev rune = -1
	for _, r := range text {
		if r == '\n' {
			penX = x
			penY += bf.LineHeight
			prev = -1
			continue
		}
		g, ok := bf.glyphs[r]
		if !ok {
			prev = -1
			continue
		}
		if prev >= 0 {
			penX += bf.kerning[[2]rune{prev, r}]
		}
		quads = append(quads, Quad{
			Page:   g.Page,
			Source: g.Source,
			Dest: Rect{
				X:      penX + g.XOffset,
				Y:      penY + g.YOffset,
				Width:  g.Source.Width,
				Height: g.Source.Height,
			},
		})
		penX += g.XAdvance
		prev = r
	}
	return quads
}

func (bf *BitmapFont) layoutGrid(text string, x, y int32) []Quad {
	page := bf.Pages[0]
	width := page.Width - page.Width%bf.charWidth

	quads := make([]Quad, 0, len(text))
	col, line := uint32(0), uint32(0)
	for _, r := range text {
		if r == '\n' {
			col = 0
			line++
			continue
		}
		if r < ' ' || r > '~' {
			col++
			continue
		}
		index := uint32(r - ' ')
		quads = append(quads, Quad{
			Source: Rect{
				X:      int32((index * bf.charWidth) % width),
				Y:      int32((index * bf.charWidth / width) * bf.charHeight),
				Width:  bf.charWidth,
				Height: bf.charHeight,
			},
			Dest: Rect{
				X:      x + int32(col*bf.charWidth),
				Y:      y + int32(line*bf.charHeight),
				Width:  bf.charWidth,
				Height: bf.charHeight,
			},
		})
		col++
	}
	return quads
}
