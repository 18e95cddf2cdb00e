package rdefault

import (
	"image"
	"runtime"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/resample"
	"github.com/srlehn/thumbcrop/resize/rez"
	"github.com/srlehn/thumbcrop/resize/xdraw"
)

// Resizer picks the SIMD backed rez resizer where available and falls
// back to golang.org/x/image/draw.
type Resizer struct{}

var _ resample.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if runtime.GOARCH != `amd64` {
		return xdraw.ApproxBiLinear().Resize(img, size)
	}
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, interface{ NRGBA() *image.NRGBA }:
		// use SIMD assembly if possible
		imgRet, err := rez.Resizer{}.Resize(img, size)
		if err == nil {
			return imgRet, nil
		}
	}
	return xdraw.ApproxBiLinear().Resize(img, size)
}
