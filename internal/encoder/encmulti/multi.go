package encmulti

import (
	"image"
	"image/color"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
	"github.com/go-errors/errors"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/encoder"
	"github.com/srlehn/thumbcrop/internal/encoder/encpng"
)

var _ encoder.Encoder = (*MultiEncoder)(nil)

// MultiEncoder writes PNG for ".png" and JPEG for anything else.
type MultiEncoder struct {
	JPEGQuality int // 0 means consts.JPEGQualityDefault
	// Background replaces transparency in JPEG output, nil means white.
	Background color.Color
}

func (e *MultiEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if w == nil || img == nil {
		return errors.New(consts.ErrNilParam)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return errors.New(`invalid image size: ` + b.Size().String())
	}
	switch encoder.Format(fileExt) {
	case `png`:
		return (&encpng.PngEncoder{}).Encode(w, img, `png`)
	default:
		if err := jpeg.Encode(w, e.flatten(img), &jpeg.Options{Quality: e.quality()}); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func (e *MultiEncoder) quality() int {
	if e == nil || e.JPEGQuality <= 0 {
		return consts.JPEGQualityDefault
	}
	if e.JPEGQuality > 100 {
		return 100
	}
	return e.JPEGQuality
}

// flatten composes img over the background, JPEG has no alpha channel
func (e *MultiEncoder) flatten(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	var bg color.Color = color.White
	if e != nil && e.Background != nil {
		bg = e.Background
	}
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), bg)
	return imaging.Overlay(canvas, img, image.Point{}, 1)
}
