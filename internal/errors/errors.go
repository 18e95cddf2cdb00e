package errors

import (
	"errors"
	"fmt"
	"runtime"

	errorsGo "github.com/go-errors/errors"

	"github.com/srlehn/thumbcrop/internal/consts"
)

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Join(errs ...error) error {
	// not implemented by github.com/go-errors/errors
	if err := errors.Join(errs...); err != nil {
		return errorsGo.Wrap(err, 1)
	}
	return nil
}

func New(obj any) *Error {
	// return nil for nil unlike github.com/go-errors/errors.New()
	if obj == nil {
		return nil
	}
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

// Kind tags cause with one of the sentinel errors from internal/consts so
// that Is(err, kind) holds while the message of cause is kept.
// A nil cause yields the bare kind.
func Kind(kind error, cause any) *Error {
	if kind == nil {
		return New(cause)
	}
	switch c := cause.(type) {
	case nil:
		return errorsGo.Wrap(kind, 1)
	case error:
		if errors.Is(c, kind) {
			return New(c)
		}
		return errorsGo.Wrap(fmt.Errorf(`%w: %w`, kind, c), 1)
	default:
		return errorsGo.Wrap(fmt.Errorf(`%w: %v`, kind, c), 1)
	}
}

func Unwrap(err error) error { return errorsGo.Unwrap(err) }

// remaining "github.com/go-errors/errors" symbols

type Error = errorsGo.Error

func Errorf(format string, a ...interface{}) *Error { return errorsGo.Errorf(format, a...) }

func Wrap(e interface{}, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

func WrapPrefix(e interface{}, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip)
}

// NilReceiver returns an error with the function name if any of the arguments are nil
func NilReceiver(args ...any) error {
	return errMsgNilTester(consts.ErrNilReceiver, 3, args...)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(consts.ErrNilParam, 3, args...)
}

// NotImplemented returns an error with the function name
func NotImplemented() error {
	return errMsg(consts.ErrNotImplemented, 3)
}

func errMsgNilTester(kind error, skip int, args ...any) error {
	if len(args) == 0 {
		return errMsg(kind, skip)
	}
	for i := range args {
		if isNil(args[i]) {
			return errMsg(kind, skip)
		}
	}
	return nil
}

func errMsg(kind error, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return Wrap(kind, skip)
	}
	return Wrap(fmt.Errorf(`%w: %s()`, kind, runtime.FuncForPC(pc).Name()), skip)
}
