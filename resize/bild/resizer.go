package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/resample"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ resample.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(consts.ErrInvalidSize)
	}
	return transform.Resize(img, size.X, size.Y, transform.Lanczos), nil
}
