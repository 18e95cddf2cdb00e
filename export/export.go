// Package export writes thumbnails of a selected region of the source
// image.
//
// The selected region is cropped and, when it is much larger than the
// target, first shrunk cheaply to twice the target size. The final shrink to
// the target size uses the filtering resizer, which keeps its cost bounded
// while the result looks like a direct high quality resize.
package export

import (
	"context"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/srlehn/thumbcrop/internal/consts"
	"github.com/srlehn/thumbcrop/internal/encoder"
	"github.com/srlehn/thumbcrop/internal/encoder/encmulti"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/internal/logx"
	"github.com/srlehn/thumbcrop/raster"
	"github.com/srlehn/thumbcrop/resample"
	"github.com/srlehn/thumbcrop/selection"
	"github.com/srlehn/thumbcrop/viewport"
)

// Target is the destination of a thumbnail and the size it has to fit.
type Target struct {
	Path   string
	Width  int
	Height int
}

// Size ...
func (t Target) Size() image.Point { return image.Point{X: t.Width, Y: t.Height} }

// Validate checks the target dimensions.
func (t Target) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return errors.Kind(consts.ErrEncode, errors.Errorf(`target size %dx%d`, t.Width, t.Height))
	}
	if len(strings.TrimSpace(t.Path)) == 0 {
		return errors.Kind(consts.ErrWrite, `empty path`)
	}
	return nil
}

// NormalizePath keeps ".jpg", ".jpeg" and ".png" file names and appends
// ".jpg" to anything else.
func NormalizePath(p string) string {
	switch strings.ToLower(filepath.Ext(p)) {
	case `.jpg`, `.jpeg`, `.png`:
		return p
	}
	return p + `.jpg`
}

// Pipeline crops, resamples and encodes thumbnails.
type Pipeline struct {
	engine      *resample.Engine
	encoder     encoder.Encoder
	logger      *slog.Logger
	overwrite   bool
	previewSize image.Point
}

var _ logx.LoggerProvider = (*Pipeline)(nil)

// New returns a pipeline. Without SetEngine it fails on use.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		encoder:     &encmulti.MultiEncoder{},
		previewSize: image.Point{X: consts.PreviewSide, Y: consts.PreviewSide},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(p); err != nil {
			return nil, errors.New(err)
		}
	}
	return p, nil
}

// Logger ...
func (p *Pipeline) Logger() *slog.Logger {
	if p == nil {
		return nil
	}
	return p.logger
}

// Engine ...
func (p *Pipeline) Engine() *resample.Engine {
	if p == nil {
		return nil
	}
	return p.engine
}

func (p *Pipeline) check() error {
	if p == nil {
		return errors.NilReceiver()
	}
	if p.engine == nil || p.encoder == nil {
		return errors.Kind(consts.ErrNilParam, `pipeline without resample engine or encoder`)
	}
	return nil
}

// Crop maps sel through the placement and returns the selected region of
// src.
func (p *Pipeline) Crop(src *raster.Image, pl viewport.Placement, sel *image.Rectangle) (*raster.Image, error) {
	if err := errors.NilReceiver(p); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.Kind(consts.ErrNoImage, nil)
	}
	rect := selection.Map(sel, pl, src.Size())
	logx.Debug(`selection mapped`, p, `selection`, sel, `placement`, pl.String(), `source_rect`, rect)
	return src.Crop(rect)
}

// Thumbnail returns the thumbnail image for the selection without writing
// it.
func (p *Pipeline) Thumbnail(ctx context.Context, src *raster.Image, pl viewport.Placement, sel *image.Rectangle, t Target) (image.Image, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	cropped, err := p.Crop(src, pl, sel)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.New(err)
	}
	var img image.Image = cropped
	if resample.NeedsPrePass(cropped.Size(), t.Size()) {
		// double size with the cheap resizer, then final size with the good one
		img, err = logx.TimeIt2(func() (image.Image, error) {
			return p.engine.FastResize(img, consts.PrePassFactor*t.Width, consts.PrePassFactor*t.Height)
		}, `pre-pass resize`, p, `from`, cropped.Size().String())
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.New(err)
		}
	}
	from := img.Bounds().Size()
	img, err = logx.TimeIt2(func() (image.Image, error) {
		return p.engine.QualityResize(img, t.Width, t.Height)
	}, `quality resize`, p, `from`, from.String())
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Preview returns a cheap preview of the selected region bounded by the
// preview size.
func (p *Pipeline) Preview(src *raster.Image, pl viewport.Placement, sel *image.Rectangle) (image.Image, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	cropped, err := p.Crop(src, pl, sel)
	if err != nil {
		return nil, err
	}
	return p.engine.FastResize(cropped, p.previewSize.X, p.previewSize.Y)
}

// Export writes the thumbnail of the selection to t.Path and returns the
// path written. The file appears complete or not at all.
func (p *Pipeline) Export(ctx context.Context, src *raster.Image, pl viewport.Placement, sel *image.Rectangle, t Target) (string, error) {
	if err := p.check(); err != nil {
		return ``, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	t.Path = NormalizePath(t.Path)
	if err := t.Validate(); err != nil {
		return ``, err
	}
	if !p.overwrite {
		if _, err := os.Stat(t.Path); err == nil {
			return ``, errors.Kind(consts.ErrExists, t.Path)
		}
	}
	thumb, err := p.Thumbnail(ctx, src, pl, sel, t)
	if err != nil {
		return ``, err
	}
	if err := ctx.Err(); err != nil {
		return ``, errors.New(err)
	}
	if err := p.writeFile(t.Path, thumb); err != nil {
		logx.IsErr(err, p, slog.LevelError, `path`, t.Path)
		return ``, err
	}
	logx.Info(`thumbnail saved`, p, `path`, t.Path, `size`, thumb.Bounds().Size().String())
	return t.Path, nil
}

// writeFile encodes into a temporary file next to the destination and moves
// it into place. Without overwrite the temporary file is hard linked, so a
// destination that appeared in the meantime is never replaced.
func (p *Pipeline) writeFile(dst string, img image.Image) (e error) {
	dir := filepath.Dir(dst)
	f, err := os.CreateTemp(dir, `.`+filepath.Base(dst)+`.*.tmp`)
	if err != nil {
		return errors.Kind(consts.ErrWrite, err)
	}
	tmpName := f.Name()
	moved := false
	defer func() {
		if e != nil {
			_ = f.Close()
		}
		if !moved {
			_ = os.Remove(tmpName)
		}
	}()
	if err := p.encoder.Encode(f, img, filepath.Ext(dst)); err != nil {
		return errors.Kind(consts.ErrEncode, err)
	}
	if err := f.Sync(); err != nil {
		return errors.Kind(consts.ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return errors.Kind(consts.ErrWrite, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Kind(consts.ErrWrite, err)
	}
	if !p.overwrite {
		err := os.Link(tmpName, dst)
		if err == nil {
			return nil
		}
		if errors.Is(err, fs.ErrExist) {
			return errors.Kind(consts.ErrExists, dst)
		}
		// no hard links on this file system
		logx.Debug(`hard link failed, renaming`, p, `error`, err.Error())
		if _, err := os.Lstat(dst); err == nil {
			return errors.Kind(consts.ErrExists, dst)
		}
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return errors.Kind(consts.ErrWrite, err)
	}
	moved = true
	return nil
}
