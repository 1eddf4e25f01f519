package animations

import (
	"image"

	"github.com/cbodonnell/healer/pkg/assets"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet is a sprite sheet split into a grid of equally sized frames.
// Rows hold animations, columns hold the frames of one animation.
type Sheet struct {
	// image is the image containing the animation frames.
	image *ebiten.Image
	// columns is the number of frames per row.
	columns int
	// rows is the number of rows.
	rows int
}

type NewSheetOptions struct {
	Image   *ebiten.Image
	Columns int
	Rows    int
}

func NewSheet(opts NewSheetOptions) *Sheet {
	return &Sheet{
		image:   opts.Image,
		columns: opts.Columns,
		rows:    opts.Rows,
	}
}

func (s *Sheet) DefaultOptions() *ebiten.DrawImageOptions {
	return &ebiten.DrawImageOptions{
		Filter: ebiten.FilterNearest,
	}
}

// FrameRect returns the source rectangle of the frame at column, row.
func (s *Sheet) FrameRect(column, row int) image.Rectangle {
	return assets.FrameRect(s.image.Bounds(), s.columns, s.rows, column, row)
}

// Frame returns the frame at column, row as a sub-image of the sheet.
func (s *Sheet) Frame(column, row int) *ebiten.Image {
	return s.image.SubImage(s.FrameRect(column, row)).(*ebiten.Image)
}

// Size returns the size of one frame.
func (s *Sheet) Size() (int, int) {
	return assets.FrameSize(s.image.Bounds(), s.columns, s.rows)
}

// Draw draws the frame at column, row stretched over the rect x, y, w, h.
func (s *Sheet) Draw(screen *ebiten.Image, column, row int, x, y, w, h float64) {
	fw, fh := s.Size()
	if fw == 0 || fh == 0 {
		return
	}
	op := s.DefaultOptions()
	op.GeoM.Scale(w/float64(fw), h/float64(fh))
	op.GeoM.Translate(x, y)
	screen.DrawImage(s.Frame(column, row), op)
}
