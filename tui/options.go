package tui

import (
	"log/slog"

	"github.com/srlehn/thumbcrop/export"
)

type Option interface {
	ApplyOption(v *Viewer) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Viewer) error

func (o OptFunc) ApplyOption(v *Viewer) error { return o(v) }

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(v *Viewer) error {
		v.logger = logger
		return nil
	})
}

// SetOnSave registers fn to be called with the target after each
// successful export, e.g. to remember the save properties.
func SetOnSave(fn func(export.Target)) Option {
	return OptFunc(func(v *Viewer) error {
		v.onSave = fn
		return nil
	})
}
