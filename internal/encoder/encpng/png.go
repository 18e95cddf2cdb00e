package encpng

import (
	"image"
	"image/png"
	"io"

	"github.com/go-errors/errors"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/encoder"
)

var _ encoder.Encoder = (*PngEncoder)(nil)

// PngEncoder writes maximally compressed PNGs.
type PngEncoder struct{}

var pngEnc = &png.Encoder{CompressionLevel: png.BestCompression}

func (e *PngEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if w == nil || img == nil {
		return errors.New(consts.ErrNilParam)
	}
	if fmtStr := encoder.Format(fileExt); fmtStr != `png` {
		return errors.New(`unsupported file format: "` + fmtStr + `"`)
	}
	if err := pngEnc.Encode(w, img); err != nil {
		return errors.New(err)
	}
	return nil
}
