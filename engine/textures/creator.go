package textures

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Creator builds textures. The engine receives one from the platform layer.
type Creator interface {
	DefaultPixelFormat() PixelFormat
	CreateTexture(format PixelFormat, access Access, width, height uint32) (*Texture, error)
	CreateTextureFromImage(img image.Image) (*Texture, error)
	LoadTexture(path string) (*Texture, error)
}

// SoftwareCreator keeps texel data in main memory, as RGBA8888.
type SoftwareCreator struct{}

func NewSoftwareCreator() *SoftwareCreator {
	return &SoftwareCreator{}
}

func (sc *SoftwareCreator) DefaultPixelFormat() PixelFormat {
	return PixelFormatRGBA8888
}

func (sc *SoftwareCreator) CreateTexture(format PixelFormat, access Access, width, height uint32) (*Texture, error) {
	if format == PixelFormatUnknown {
		format = sc.DefaultPixelFormat()
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	return &Texture{
		Width:    width,
		Height:   height,
		Format:   format,
		Access:   access,
		Pixels:   make([]byte, format.ByteSizeOfPixels(int(width)*int(height))),
		ColorMod: [3]uint8{255, 255, 255},
	}, nil
}

func (sc *SoftwareCreator) CreateTextureFromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("cannot create a texture from an empty image")
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	return &Texture{
		Width:    uint32(b.Dx()),
		Height:   uint32(b.Dy()),
		Format:   PixelFormatRGBA8888,
		Access:   AccessStatic,
		Pixels:   rgba.Pix,
		ColorMod: [3]uint8{255, 255, 255},
	}, nil
}

func (sc *SoftwareCreator) LoadTexture(path string) (*Texture, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	t, err := sc.CreateTextureFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Name = path
	return t, nil
}

// DecodeImage opens and decodes an image file (png, jpeg, gif, bmp, tiff, webp).
func DecodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image '%s': %w", path, err)
	}
	return img, nil
}
