// Package assets locates and decodes the game's bitmap files.
//
// A missing or unreadable bitmap is always an error: nothing in the game can
// be drawn without its texture, so callers abort construction of the entity
// that needed it.
package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"golang.org/x/image/bmp"
)

const (
	PlayerSheet = "sprites/healer.bmp"
	Background  = "sprites/background.bmp"
	Enemy       = "sprites/enemy.bmp"
	Goal        = "sprites/treasure.bmp"
	Heart       = "sprites/heart.bmp"
)

// Manifest lists every bitmap the game loads.
var Manifest = []string{
	PlayerSheet,
	Background,
	Enemy,
	Goal,
	Heart,
}

// ErrLoad wraps every failure to turn an asset path into an image.
var ErrLoad = errors.New("failed to load asset")

// LoadError describes which asset failed and why.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v %s: %v", ErrLoad, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// LoadBitmap opens path in fsys and decodes it as an uncompressed bitmap.
func LoadBitmap(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to decode bitmap: %w", err)}
	}

	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("empty image %dx%d", b.Dx(), b.Dy())}
	}

	return img, nil
}

// Preflight checks that every asset in the manifest loads, so a missing file
// stops the game before a window is opened.
func Preflight(fsys fs.FS) error {
	var errs []error
	for _, path := range Manifest {
		if _, err := LoadBitmap(fsys, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FrameSize returns the size of one frame when an image of the given bounds
// is cut into columns by rows frames.
func FrameSize(bounds image.Rectangle, columns, rows int) (int, int) {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	return bounds.Dx() / columns, bounds.Dy() / rows
}

// FrameRect returns the source rectangle of the frame at column, row.
func FrameRect(bounds image.Rectangle, columns, rows, column, row int) image.Rectangle {
	w, h := FrameSize(bounds, columns, rows)
	x := bounds.Min.X + column*w
	y := bounds.Min.Y + row*h
	return image.Rect(x, y, x+w, y+h)
}
