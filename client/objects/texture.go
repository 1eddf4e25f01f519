package objects

import (
	"fmt"
	"io/fs"

	"github.com/cbodonnell/healer/pkg/assets"
	"github.com/hajimehoshi/ebiten/v2"
)

// Texture owns one GPU image loaded from an asset file.
type Texture struct {
	path  string
	image *ebiten.Image
}

// LoadTexture decodes the bitmap at path and uploads it.
func LoadTexture(fsys fs.FS, path string) (*Texture, error) {
	img, err := assets.LoadBitmap(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}
	return &Texture{
		path:  path,
		image: ebiten.NewImageFromImage(img),
	}, nil
}

func (t *Texture) Path() string {
	return t.path
}

// Image returns the texture's image, or nil once it has been disposed.
func (t *Texture) Image() *ebiten.Image {
	return t.image
}

// Dispose releases the GPU image. It is safe to call more than once.
func (t *Texture) Dispose() {
	if t.image == nil {
		return
	}
	t.image.Deallocate()
	t.image = nil
}
