package view

import (
	"log/slog"

	"github.com/srlehn/thumbcrop/raster"
)

type Option interface {
	ApplyOption(c *Controller) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Controller) error

func (o OptFunc) ApplyOption(c *Controller) error { return o(c) }

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(c *Controller) error {
		c.logger = logger
		return nil
	})
}

// SetDecodeOptions sets the options for decoding loaded files.
func SetDecodeOptions(opts ...raster.Option) Option {
	return OptFunc(func(c *Controller) error {
		c.decOpts = append(c.decOpts, opts...)
		return nil
	})
}

// SetViewport sets the initial viewport size.
func SetViewport(w, h int) Option {
	return OptFunc(func(c *Controller) error {
		c.st.Viewport.X, c.st.Viewport.Y = w, h
		return nil
	})
}
