// Package thumbcrop creates thumbnails of image regions with chosen
// default resizers.
package thumbcrop

import (
	"context"
	"image"

	"github.com/srlehn/thumbcrop/export"
	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/raster"
	"github.com/srlehn/thumbcrop/resample"
	"github.com/srlehn/thumbcrop/resize"
	"github.com/srlehn/thumbcrop/viewport"
)

var (
	// chosen defaults
	fastResizer    = consts.ResizerFastDefault
	qualityResizer = consts.ResizerQualityDefault
)

var engineActive *resample.Engine

// Engine returns the default resample engine.
func Engine() (*resample.Engine, error) {
	if engineActive != nil {
		return engineActive, nil
	}
	eng, err := resize.Engine(fastResizer, qualityResizer)
	if err != nil {
		return nil, err
	}
	engineActive = eng
	return engineActive, nil
}

// Load decodes an image file.
func Load(imgFile string) (*raster.Image, error) { return raster.DecodeFile(imgFile) }

// Fit ...
func Fit(source, vp image.Point) viewport.Placement { return viewport.Fit(source, vp) }

// Thumbnail shrinks the whole of img into w x h.
func Thumbnail(img image.Image, w, h int) (image.Image, error) {
	p, err := pipeline(false)
	if err != nil {
		return nil, err
	}
	src := raster.FromImage(img)
	return p.Thumbnail(context.Background(), src, viewport.Fit(src.Size(), src.Size()), nil, export.Target{Path: `-`, Width: w, Height: h})
}

// ExportFile writes a w x h bounded thumbnail of the whole image in
// srcFile to dstFile and returns the path written.
func ExportFile(srcFile, dstFile string, w, h int, overwrite bool) (string, error) {
	img, err := Load(srcFile)
	if err != nil {
		return ``, err
	}
	p, err := pipeline(overwrite)
	if err != nil {
		return ``, err
	}
	pl := viewport.Fit(img.Size(), img.Size())
	return p.Export(context.Background(), img, pl, nil, export.Target{Path: dstFile, Width: w, Height: h})
}

func pipeline(overwrite bool) (*export.Pipeline, error) {
	eng, err := Engine()
	if err != nil {
		return nil, err
	}
	return export.New(export.SetEngine(eng), export.SetOverwrite(overwrite))
}
