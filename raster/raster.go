// Package raster holds the decoded source image of the viewer.
//
// Pixels are normalized into a single *image.NRGBA with an explicit channel
// mode, conversion into something renderable is left to the display side.
package raster

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/errors"
)

// Mode is the channel mode of an image
type Mode int

const (
	ModeRGB Mode = iota
	ModeRGBA
)

func (m Mode) String() string {
	switch m {
	case ModeRGBA:
		return `RGBA`
	default:
		return `RGB`
	}
}

var _ image.Image = (*Image)(nil)

// Image is a decoded source image. The zero value is not usable, use
// Decode, DecodeFile or Placeholder.
type Image struct {
	pix      *image.NRGBA
	mode     Mode
	FileName string
}

type decodeConfig struct {
	maxPixels int
}

// Option configures decoding
type Option func(*decodeConfig)

// SetMaxPixels limits the pixel count of a decoded image.
// Images above the limit fail with consts.ErrOutOfMemory before any pixel
// buffer is allocated, unless the data is too short for the claimed size,
// which fails with consts.ErrDecode. n <= 0 disables the limit.
func SetMaxPixels(n int) Option {
	return func(c *decodeConfig) { c.maxPixels = n }
}

// Decode reads and decodes an image.
func Decode(r io.Reader, opts ...Option) (*Image, error) {
	if r == nil {
		return nil, errors.NilParam()
	}
	cfg := &decodeConfig{maxPixels: consts.MaxPixelsDefault}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Kind(consts.ErrIO, err)
	}
	imCfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Kind(consts.ErrDecode, err)
	}
	if imCfg.Width <= 0 || imCfg.Height <= 0 {
		return nil, errors.Kind(consts.ErrDecode, `empty image`)
	}
	if cfg.maxPixels > 0 && imCfg.Width > cfg.maxPixels/imCfg.Height {
		if !plausibleSize(imCfg.Width, imCfg.Height, len(data)) {
			return nil, errors.Kind(consts.ErrDecode, errors.Errorf(`%dx%d pixels in %d bytes`, imCfg.Width, imCfg.Height, len(data)))
		}
		return nil, errors.Kind(consts.ErrOutOfMemory, errors.Errorf(`%dx%d pixels`, imCfg.Width, imCfg.Height))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Kind(consts.ErrDecode, err)
	}
	return FromImage(img), nil
}

// plausibleSize reports whether dataLen bytes can hold a w x h frame.
func plausibleSize(w, h, dataLen int) bool {
	if dataLen <= 0 {
		return false
	}
	return int64(w)*int64(h)/int64(dataLen) <= consts.MaxPixelsPerByte
}

// DecodeFile opens and decodes the image file.
func DecodeFile(imgFile string, opts ...Option) (*Image, error) {
	if imgFileAbs, err := filepath.Abs(imgFile); err == nil {
		imgFile = imgFileAbs
	}
	f, err := os.Open(imgFile)
	if err != nil {
		return nil, errors.Kind(consts.ErrIO, err)
	}
	defer f.Close()
	img, err := Decode(f, opts...)
	if err != nil {
		return nil, err
	}
	img.FileName = imgFile
	return img, nil
}

// FromImage copies img into a new Image.
func FromImage(img image.Image) *Image {
	if img == nil {
		return Placeholder()
	}
	if m, ok := img.(*Image); ok {
		return m.clone()
	}
	return &Image{
		pix:  imaging.Clone(img),
		mode: modeOf(img),
	}
}

// Placeholder returns a 1x1 opaque black image that stands in when nothing
// could be loaded.
func Placeholder() *Image {
	pix := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	pix.SetNRGBA(0, 0, color.NRGBA{A: 0xff})
	return &Image{pix: pix, mode: ModeRGB}
}

func modeOf(img image.Image) Mode {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return ModeRGB
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return ModeRGB
	}
	return ModeRGBA
}

func (i *Image) clone() *Image {
	if i == nil || i.pix == nil {
		return Placeholder()
	}
	return &Image{pix: imaging.Clone(i.pix), mode: i.mode, FileName: i.FileName}
}

// Mode returns the channel mode.
func (i *Image) Mode() Mode {
	if i == nil {
		return ModeRGB
	}
	return i.mode
}

// HasAlpha reports whether the channel mode includes an alpha channel.
func (i *Image) HasAlpha() bool { return i.Mode() == ModeRGBA }

// Opaque ...
func (i *Image) Opaque() bool { return !i.HasAlpha() }

// Size returns width and height in pixels.
func (i *Image) Size() image.Point {
	if i == nil || i.pix == nil {
		return image.Point{}
	}
	return i.pix.Bounds().Size()
}

// NRGBA returns the underlying pixel buffer. It must not be modified.
func (i *Image) NRGBA() *image.NRGBA {
	if i == nil {
		return nil
	}
	return i.pix
}

// ColorModel ...
func (i *Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds ...
func (i *Image) Bounds() image.Rectangle {
	if i == nil || i.pix == nil {
		return image.Rectangle{}
	}
	return i.pix.Bounds()
}

// At ...
func (i *Image) At(x, y int) color.Color {
	if i == nil || i.pix == nil {
		return color.NRGBA{}
	}
	return i.pix.At(x, y)
}

// RotateRight90 returns the image rotated by 90° clockwise.
// Width and height are swapped, no pixels are lost.
func (i *Image) RotateRight90() *Image {
	if i == nil || i.pix == nil {
		return Placeholder()
	}
	// imaging rotates counter-clockwise
	return &Image{pix: imaging.Rotate270(i.pix), mode: i.mode, FileName: i.FileName}
}

// Crop returns a copy of the sub-rectangle r of the image.
// r is canonicalized and clamped to the image bounds first, an empty
// result fails with consts.ErrInvalidRect.
func (i *Image) Crop(r image.Rectangle) (*Image, error) {
	if i == nil || i.pix == nil {
		return nil, errors.NilReceiver()
	}
	rc := r.Canon().Intersect(i.pix.Bounds())
	if rc.Empty() {
		return nil, errors.Kind(consts.ErrInvalidRect, errors.Errorf(`%v`, r))
	}
	return &Image{pix: imaging.Crop(i.pix, rc), mode: i.mode, FileName: i.FileName}, nil
}
