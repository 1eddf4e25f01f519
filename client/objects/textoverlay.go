package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/healer/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextOverlayObject dims the screen and draws a caption in its center.
type TextOverlayObject struct {
	*BaseObject

	text     string
	subtitle string
}

func NewTextOverlayObject(id string, text string, subtitle string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, nil),
		text:       text,
		subtitle:   subtitle,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 160}, false)

	drawCentered(screen, strings.ToUpper(o.text), fonts.TTFLargeFont, w/2, h/2, color.White)
	if o.subtitle != "" {
		drawCentered(screen, o.subtitle, fonts.MonoFont, w/2, h/2+40, color.RGBA{220, 220, 220, 255})
	}
}

func drawCentered(screen *ebiten.Image, t string, f font.Face, cx, cy float64, clr color.Color) {
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(bounds.Max.X>>6)/2, cy-float64(bounds.Min.Y>>6)/2)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, t, f, op)
}
