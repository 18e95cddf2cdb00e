package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/resample"
)

// Resizer uses "github.com/nfnt/resize".
// The zero value samples the nearest neighbour, a nil *Resizer uses Lanczos3.
type Resizer struct {
	Interp resize.InterpolationFunction
}

var _ resample.Resizer = (*Resizer)(nil)

// Lanczos3 ...
func Lanczos3() *Resizer { return &Resizer{Interp: resize.Lanczos3} }

// NearestNeighbor ...
func NearestNeighbor() *Resizer { return &Resizer{Interp: resize.NearestNeighbor} }

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(consts.ErrInvalidSize)
	}
	interp := resize.Lanczos3
	if r != nil {
		interp = r.Interp
	}
	return resize.Resize(uint(size.X), uint(size.Y), img, interp), nil
}
