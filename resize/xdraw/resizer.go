// Package xdraw provides resizers using golang.org/x/image/draw.
// NearestNeighbor is the cheapest and serves as the default fast policy.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/resample"
)

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ resample.Resizer = (*resizer)(nil)

// NearestNeighbor creates a resizer without any filtering (fastest).
func NearestNeighbor() resample.Resizer {
	return &resizer{scaler: draw.NearestNeighbor}
}

// ApproxBiLinear creates a new resizer with ApproxBiLinear scaling (balanced speed/quality).
func ApproxBiLinear() resample.Resizer {
	return &resizer{scaler: draw.ApproxBiLinear}
}

// BiLinear creates a new resizer with BiLinear scaling (higher quality, slower).
func BiLinear() resample.Resizer {
	return &resizer{scaler: draw.BiLinear}
}

// CatmullRom creates a new resizer with CatmullRom scaling (highest quality, slowest).
func CatmullRom() resample.Resizer {
	return &resizer{scaler: draw.CatmullRom}
}

// Resize scales an image to the target size using the configured scaler.
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(consts.ErrInvalidSize)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
