package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/resample"
)

// Resizer uses "github.com/disintegration/gift"
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
	m := image.NewNRGBA(image.Rectangle{Max: size})
	gift.Resize(size.X, size.Y, gift.LanczosResampling).Draw(m, img, &gift.Options{Parallelization: true})
	return m, nil
}
