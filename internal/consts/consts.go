package consts

import (
	"errors"
)

var (
	ErrNotImplemented = errors.New(`not implemented`)
	ErrNilReceiver    = errors.New(`nil receiver`)
	ErrNilParam       = errors.New(`nil parameter`)
	ErrNilImage       = errors.New(`nil image`)
	ErrInvalidSize    = errors.New(`invalid size`)
	ErrNoImage        = errors.New(`no image loaded`)
	ErrExists         = errors.New(`file exists`)

	// failure taxonomy surfaced to the user
	ErrDecode      = errors.New(`wrong image format`)
	ErrIO          = errors.New(`cannot open the file`)
	ErrOutOfMemory = errors.New(`not enough memory to open the file`)
	ErrInvalidRect = errors.New(`invalid crop rectangle`)
	ErrWrite       = errors.New(`cannot save file`)
	ErrEncode      = errors.New(`cannot encode thumbnail`)
)

const (
	LibraryName = `thumbcrop`

	ResizerFastDefault    = `nearest`
	ResizerQualityDefault = `lanczos`

	// pre-pass runs when the crop exceeds PrePassFactor times the target
	PrePassFactor = 2

	PreviewSide = 200

	TargetSideMax     = 999 // 3 digit input fields
	TargetSideDefault = 200

	JPEGQualityDefault = 90
	MaxPixelsDefault   = 1 << 28

	// no supported format encodes more pixels per input byte, a header
	// claiming more belongs to truncated data
	MaxPixelsPerByte = 1 << 16
)
