package textures

import "fmt"

// PixelFormat describes the memory layout of one texel.
type PixelFormat int

const (
	PixelFormatUnknown PixelFormat = iota
	PixelFormatRGBA8888
	PixelFormatRGB888
	PixelFormatA8
)

// BytesPerPixel returns the storage size of one texel.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGBA8888:
		return 4
	case PixelFormatRGB888:
		return 3
	case PixelFormatA8:
		return 1
	default:
		return 0
	}
}

// ByteSizeOfPixels returns the storage size of n texels.
func (f PixelFormat) ByteSizeOfPixels(n int) int {
	return f.BytesPerPixel() * n
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGBA8888:
		return "RGBA8888"
	case PixelFormatRGB888:
		return "RGB888"
	case PixelFormatA8:
		return "A8"
	default:
		return "Unknown"
	}
}

// Access tells how a texture is going to be used.
type Access int

const (
	// Changes rarely, not lockable.
	AccessStatic Access = iota
	// Changes frequently, lockable.
	AccessStreaming
	// Can be used as a render target.
	AccessTarget
)

/**
 * @brief Represents a texture.
 */
type Texture struct {
	/** @brief The texture Name, usually the file it was loaded from. */
	Name string
	/** @brief The texture Width. */
	Width uint32
	/** @brief The texture Height. */
	Height uint32
	Format PixelFormat
	Access Access
	/** @brief The texture Generation. Incremented every time the data is rewritten. */
	Generation uint32
	/** @brief The raw texture data (pixels). */
	Pixels []byte
	// ColorMod is multiplied into every texel when the texture is drawn.
	ColorMod [3]uint8
}

// ByteSize estimates the video memory taken by the texture.
func (t *Texture) ByteSize() uint64 {
	return uint64(t.Format.ByteSizeOfPixels(int(t.Width) * int(t.Height)))
}

func (t *Texture) SetColorMod(r, g, b uint8) {
	t.ColorMod = [3]uint8{r, g, b}
}

// Update replaces the pixel data of a streaming or target texture.
func (t *Texture) Update(pixels []byte) error {
	if t.Access == AccessStatic {
		return fmt.Errorf("texture '%s' is static and cannot be updated", t.Name)
	}
	if uint64(len(pixels)) != t.ByteSize() {
		return fmt.Errorf("texture '%s' expects %d bytes, got %d", t.Name, t.ByteSize(), len(pixels))
	}
	copy(t.Pixels, pixels)
	t.Generation++
	return nil
}
