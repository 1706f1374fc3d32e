package cubfile

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"gridcaster/internal/raycast"
)

// TextureSize is the required side length of every wall texture.
const TextureSize = 64

// LoadTextures decodes the scene's four wall textures.
func (s *Scene) LoadTextures() (*raycast.TextureSet, error) {
	var set raycast.TextureSet
	for d, path := range s.TexturePaths {
		tex, err := loadTexture(path)
		if err != nil {
			return nil, fmt.Errorf("%s texture: %w", raycast.Direction(d), err)
		}
		set[d] = tex
	}
	return &set, nil
}

func loadTexture(path string) (*raycast.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() != TextureSize || b.Dy() != TextureSize {
		return nil, fmt.Errorf("%w: %q is %dx%d, want %dx%d", ErrTextureSize, path, b.Dx(), b.Dy(), TextureSize, TextureSize)
	}
	return raycast.TextureFromImage(img)
}
