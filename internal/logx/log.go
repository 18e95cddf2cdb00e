package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/srlehn/thumbcrop/internal/errors"
)

func Log(msg string, logger *slog.Logger, lvl slog.Level, skip int, args ...any) {
	if logger == nil || !logger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(context.Background(), r)
}

func Debug(msg string, loggerProv LoggerProvider, args ...any) {
	Log(msg, logger(loggerProv), slog.LevelDebug, 3, args...)
}
func Info(msg string, loggerProv LoggerProvider, args ...any) {
	Log(msg, logger(loggerProv), slog.LevelInfo, 3, args...)
}
func Warn(msg string, loggerProv LoggerProvider, args ...any) {
	Log(msg, logger(loggerProv), slog.LevelWarn, 3, args...)
}
func Error(msg string, loggerProv LoggerProvider, args ...any) {
	Log(msg, logger(loggerProv), slog.LevelError, 3, args...)
}

// IsErr logs err (every member of a joined error separately) and reports
// whether err was non-nil.
func IsErr(err error, loggerProv LoggerProvider, lvl slog.Level, args ...any) bool {
	if err == nil {
		return false
	}
	if l := logger(loggerProv); l != nil {
		if errs, ok := err.(interface{ Unwrap() []error }); ok {
			for _, err := range errs.Unwrap() {
				Log(err.Error(), l, lvl, 3, args...)
			}
		} else {
			Log(err.Error(), l, lvl, 3, args...)
		}
	}
	return true
}

func Err(err error, loggerProv LoggerProvider, lvl slog.Level, args ...any) error {
	if IsErr(err, loggerProv, lvl, args...) {
		return err
	}
	return nil
}

func TimeIt(fn func() error, msg string, loggerProv LoggerProvider, args ...any) error {
	if fn == nil {
		return errors.NilParam()
	}
	if len(msg) == 0 {
		msg = `duration measurement for function`
	}
	start := time.Now()
	err := fn()
	Log(msg, logger(loggerProv), slog.LevelDebug, 3, append([]any{`duration`, time.Since(start)}, args...)...)
	return err
}

func TimeIt2[T any](fn func() (T, error), msg string, loggerProv LoggerProvider, args ...any) (T, error) {
	var ret T
	if fn == nil {
		return ret, errors.NilParam()
	}
	if len(msg) == 0 {
		msg = `duration measurement for function`
	}
	start := time.Now()
	ret, err := fn()
	Log(msg, logger(loggerProv), slog.LevelDebug, 3, append([]any{`duration`, time.Since(start)}, args...)...)
	return ret, err
}

type LoggerProvider interface{ Logger() *slog.Logger }

var _ LoggerProvider = (*loggerProvider)(nil)

type loggerProvider struct{ logger *slog.Logger }

func (p *loggerProvider) Logger() *slog.Logger {
	if p == nil {
		return nil
	}
	return p.logger
}

func Prov(logger *slog.Logger) LoggerProvider { return &loggerProvider{logger: logger} }

func logger(loggerProv LoggerProvider) *slog.Logger {
	if loggerProv == nil {
		return nil
	}
	return loggerProv.Logger()
}

// NewFileLogger opens (appends to) logFile and returns a text logger
// writing into it together with the file for closing.
func NewFileLogger(logFile string, lvl slog.Leveler) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.New(err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{AddSource: true, Level: lvl})
	return slog.New(h), f, nil
}
