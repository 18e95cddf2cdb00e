package export

import (
	"image"
	"log/slog"

	"github.com/srlehn/thumbcrop/internal/encoder"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/resample"
)

type Option interface {
	ApplyOption(p *Pipeline) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Pipeline) error

func (o OptFunc) ApplyOption(p *Pipeline) error { return o(p) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(p *Pipeline) error {
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(p); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func SetEngine(eng *resample.Engine) Option {
	return OptFunc(func(p *Pipeline) error {
		if eng == nil {
			return errors.NilParam()
		}
		p.engine = eng
		return nil
	})
}

func SetEncoder(enc encoder.Encoder) Option {
	return OptFunc(func(p *Pipeline) error {
		if enc == nil {
			return errors.NilParam()
		}
		p.encoder = enc
		return nil
	})
}

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(p *Pipeline) error {
		p.logger = logger
		return nil
	})
}

// SetOverwrite allows replacing existing files.
func SetOverwrite(overwrite bool) Option {
	return OptFunc(func(p *Pipeline) error {
		p.overwrite = overwrite
		return nil
	})
}

// SetPreviewSize sets the bounding box of Preview.
func SetPreviewSize(w, h int) Option {
	return OptFunc(func(p *Pipeline) error {
		if w <= 0 || h <= 0 {
			return errors.Errorf(`invalid preview size %dx%d`, w, h)
		}
		p.previewSize = image.Point{X: w, Y: h}
		return nil
	})
}
