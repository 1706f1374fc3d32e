package raycast

import (
	"fmt"
	"image"
	"math"
)

// FallbackColor is returned for texture reads outside the pixel grid.
const FallbackColor uint32 = 0xFF00FF

// Texture is an immutable square grid of packed 0xRRGGBB pixels.
type Texture struct {
	size int
	pix  []uint32
}

// NewTexture wraps pix, which must hold size*size row-major pixels.
func NewTexture(size int, pix []uint32) (*Texture, error) {
	if size <= 0 {
		return nil, fmt.Errorf("texture size %d must be positive", size)
	}
	if len(pix) != size*size {
		return nil, fmt.Errorf("texture has %d pixels, want %d", len(pix), size*size)
	}
	return &Texture{size: size, pix: pix}, nil
}

// SolidTexture returns a size×size texture filled with one color.
func SolidTexture(size int, color uint32) *Texture {
	pix := make([]uint32, size*size)
	for i := range pix {
		pix[i] = color
	}
	return &Texture{size: size, pix: pix}
}

// TextureFromImage converts any image into a texture. Non-square images are
// rejected; alpha is discarded.
func TextureFromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("texture is %dx%d, want a square image", b.Dx(), b.Dy())
	}
	size := b.Dx()
	pix := make([]uint32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			pix[y*size+x] = PackRGB(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return NewTexture(size, pix)
}

func (t *Texture) Width() int  { return t.size }
func (t *Texture) Height() int { return t.size }

// PixelAt returns the pixel at (x, y) or FallbackColor when out of range.
func (t *Texture) PixelAt(x, y int) uint32 {
	if t == nil || x < 0 || y < 0 || x >= t.size || y >= t.size {
		return FallbackColor
	}
	return t.pix[y*t.size+x]
}

// TextureProvider resolves the texture for a wall face.
type TextureProvider interface {
	TextureFor(d Direction) *Texture
}

// TextureSet holds one texture per Direction, indexed by its value.
type TextureSet [4]*Texture

// TextureFor returns the texture for d, or nil for an unknown direction.
func (s *TextureSet) TextureFor(d Direction) *Texture {
	if d < North || d > East {
		return nil
	}
	return s[d]
}

// Validate checks that every direction has a texture and that all share the
// same dimensions.
func (s *TextureSet) Validate() error {
	size := -1
	for d := North; d <= East; d++ {
		t := s[d]
		if t == nil {
			return fmt.Errorf("missing %s texture", d)
		}
		if size == -1 {
			size = t.size
		} else if t.size != size {
			return fmt.Errorf("%s texture is %dpx, others are %dpx", d, t.size, size)
		}
	}
	return nil
}

// textureColumn picks the texel column for a wall offset, guarding the
// wallX == 1 boundary.
func textureColumn(wallX float64, width int) int {
	return clampInt(int(math.Floor(wallX*float64(width))), 0, width-1)
}

// SampleColumn fills dst with the texture colors for rows
// [p.DrawStart, p.DrawEnd] and returns the filled prefix of dst. dst is
// grown when it is too short.
func SampleColumn(tex *Texture, wallX float64, p Projection, screenHeight int, dst []uint32) []uint32 {
	rows := p.DrawEnd - p.DrawStart + 1
	if rows <= 0 {
		return dst[:0]
	}
	if cap(dst) < rows {
		dst = make([]uint32, rows)
	}
	dst = dst[:rows]
	if tex == nil || p.LineHeight <= 0 {
		for i := range dst {
			dst[i] = FallbackColor
		}
		return dst
	}
	width, height := tex.Width(), tex.Height()
	texX := textureColumn(wallX, width)
	step := float64(height) / float64(p.LineHeight)
	texPos := float64(p.DrawStart-p.unclampedStart(screenHeight)) * step
	for i := range dst {
		texY := clampInt(int(texPos), 0, height-1)
		dst[i] = tex.PixelAt(texX, texY)
		texPos += step
	}
	return dst
}
