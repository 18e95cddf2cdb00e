package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/resample"
)

// Resizer uses "github.com/disintegration/imaging".
// The zero value filters with Lanczos.
type Resizer struct {
	Filter *imaging.ResampleFilter
}

var _ resample.Resizer = (*Resizer)(nil)

// Box is the area-averaging filter, cheap but without aliasing of
// nearest neighbour sampling.
func Box() *Resizer { return &Resizer{Filter: &imaging.Box} }

// Lanczos is the antialiasing filter used for the final export step.
func Lanczos() *Resizer { return &Resizer{Filter: &imaging.Lanczos} }

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(consts.ErrInvalidSize)
	}
	filter := imaging.Lanczos
	if r != nil && r.Filter != nil {
		filter = *r.Filter
	}
	return imaging.Resize(img, size.X, size.Y, filter), nil
}
