package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/srlehn/thumbcrop/export"
	"github.com/srlehn/thumbcrop/internal/config"
	"github.com/srlehn/thumbcrop/internal/encoder/encmulti"
	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/internal/logx"
	"github.com/srlehn/thumbcrop/raster"
	"github.com/srlehn/thumbcrop/resample"
	"github.com/srlehn/thumbcrop/resize"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "thumbcrop creates thumbnails of image regions",
	Long:             "thumbcrop creates thumbnails of image regions",
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFlag, `config`, config.DefaultPath(), `configuration file`)
	pf.BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	pf.StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
	pf.StringVar(&fastFlag, `fast`, ``, `resizer for previews and the pre-pass`)
	pf.StringVar(&qualityFlag, `quality`, ``, `resizer for the final thumbnail`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	configFlag  string
	debugFlag   bool
	logFileFlag string
	fastFlag    string
	qualityFlag string
)

func run(fn func(a *app) error) {
	exitCode := 0
	var a *app
	defer func() {
		if r := recover(); r != nil {
			exitCode = 1
			if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				debug.PrintStack()
			}
		}
		if a != nil {
			_ = a.Close()
		}
		os.Exit(exitCode)
	}()
	var err error
	if fn == nil {
		err = errors.NilParam()
	} else if a, err = newApp(); err == nil {
		err = fn(a)
	}
	if err != nil {
		logx.IsErr(err, a, slog.LevelError)
		exitCode = 1
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
			fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}
}

// app bundles what the commands share.
type app struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	logFile io.Closer
	engine  *resample.Engine
}

var _ logx.LoggerProvider = (*app)(nil)

func newApp() (*app, error) {
	a := &app{cfgPath: configFlag}
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	if len(fastFlag) > 0 {
		a.cfg.FastResizer = fastFlag
	}
	if len(qualityFlag) > 0 {
		a.cfg.QualityResizer = qualityFlag
	}
	if len(logFileFlag) > 0 {
		lvl := slog.LevelInfo
		if debugFlag {
			lvl = slog.LevelDebug
		}
		a.logger, a.logFile, err = logx.NewFileLogger(logFileFlag, lvl)
		if err != nil {
			return nil, err
		}
	}
	a.engine, err = resize.Engine(a.cfg.FastResizer, a.cfg.QualityResizer)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	logx.Debug(`configuration`, a, `path`, a.cfgPath, `fast`, a.cfg.FastResizer, `quality`, a.cfg.QualityResizer)
	return a, nil
}

func (a *app) Logger() *slog.Logger {
	if a == nil {
		return nil
	}
	return a.logger
}

func (a *app) Close() error {
	if a == nil || a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func (a *app) pipeline(overwrite bool) (*export.Pipeline, error) {
	return export.New(
		export.SetEngine(a.engine),
		export.SetEncoder(&encmulti.MultiEncoder{JPEGQuality: a.cfg.JPEGQuality}),
		export.SetLogger(a.logger),
		export.SetOverwrite(overwrite || a.cfg.Overwrite),
	)
}

func (a *app) decodeOptions() []raster.Option {
	return []raster.Option{raster.SetMaxPixels(a.cfg.MaxPixels)}
}

// remember stores the last used save properties.
func (a *app) remember(t export.Target) {
	if len(a.cfgPath) == 0 {
		return
	}
	a.cfg.SavePath = t.Path
	a.cfg.TargetWidth = t.Width
	a.cfg.TargetHeight = t.Height
	logx.IsErr(a.cfg.Save(a.cfgPath), a, slog.LevelWarn, `config`, a.cfgPath)
}
