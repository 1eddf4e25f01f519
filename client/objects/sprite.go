package objects

import (
	"fmt"
	"image"
	"io/fs"
	"math"

	gametypes "github.com/cbodonnell/healer/pkg/game/types"
	"github.com/cbodonnell/healer/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws a SpriteState with its full texture, rotated around its center.
type Sprite struct {
	*BaseObject

	State *gametypes.SpriteState

	texture *Texture
	src     image.Rectangle
}

type NewSpriteOptions struct {
	// State is the simulated sprite to draw.
	State *gametypes.SpriteState
	// Assets is the filesystem the texture is loaded from.
	Assets fs.FS
	// Path is the texture's path inside Assets.
	Path string
	// ZIndex is the draw order of the sprite.
	ZIndex int
}

// NewSprite loads the sprite's texture and fails if it cannot.
func NewSprite(id string, opts NewSpriteOptions) (*Sprite, error) {
	texture, err := LoadTexture(opts.Assets, opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite %s: %w", id, err)
	}
	return &Sprite{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		State:   opts.State,
		texture: texture,
		src:     texture.Image().Bounds(),
	}, nil
}

func (s *Sprite) Destroy() error {
	log.Trace("Releasing texture %s of %s", s.texture.Path(), s.GetID())
	s.texture.Dispose()
	return nil
}

func (s *Sprite) Draw(screen *ebiten.Image) {
	img := s.texture.Image()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{
		Filter: ebiten.FilterNearest,
	}
	setRectTransform(op, s.src, s.State.Position.X, s.State.Position.Y, s.State.Size.X, s.State.Size.Y, s.State.Angle)
	screen.DrawImage(img.SubImage(s.src).(*ebiten.Image), op)
}

// setRectTransform maps src onto the destination rect x, y, w, h rotated by
// angle degrees clockwise around the rect center.
func setRectTransform(op *ebiten.DrawImageOptions, src image.Rectangle, x, y, w, h, angle float64) {
	if src.Dx() == 0 || src.Dy() == 0 {
		return
	}
	op.GeoM.Scale(w/float64(src.Dx()), h/float64(src.Dy()))
	if angle != 0 {
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(angle * math.Pi / 180)
		op.GeoM.Translate(w/2, h/2)
	}
	op.GeoM.Translate(x, y)
}
