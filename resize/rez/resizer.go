package rez

import (
	"image"

	"github.com/bamiaux/rez"
	"github.com/disintegration/imaging"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/resample"
)

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct{}

var _ resample.Resizer = (*Resizer)(nil)

// Resize ...
func (r Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(consts.ErrInvalidSize)
	}
	// rez wants matching pixel layouts on both ends
	src := NRGBA(img)
	m := image.NewNRGBA(image.Rectangle{Max: size})
	if err := rez.Convert(m, src, rez.NewBilinearFilter()); err != nil {
		return nil, errors.New(err)
	}
	return m, nil
}

// NRGBA returns img as *image.NRGBA, copying only when needed.
func NRGBA(img image.Image) *image.NRGBA {
	switch it := img.(type) {
	case *image.NRGBA:
		return it
	case interface{ NRGBA() *image.NRGBA }:
		if m := it.NRGBA(); m != nil {
			return m
		}
	}
	return imaging.Clone(img)
}
