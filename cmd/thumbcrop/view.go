package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/srlehn/thumbcrop/export"
	"github.com/srlehn/thumbcrop/internal/logx"
	"github.com/srlehn/thumbcrop/tui"
	"github.com/srlehn/thumbcrop/view"
)

func init() { rootCmd.AddCommand(viewCmd) }

var viewCmd = &cobra.Command{
	Use:   viewCmdStr + ` <image files...>`,
	Short: `select and export thumbnails interactively in the terminal`,
	Long: `Select and export thumbnails interactively in the terminal.

Drag with the left mouse button to select a region.
Keys: n next file, r rotate right, c clear selection, s save thumbnail, q quit.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(viewFunc(cmd, args))
	},
}

var viewCmdStr = `view`

func viewFunc(cmd *cobra.Command, args []string) func(a *app) error {
	return func(a *app) error {
		pipeline, err := a.pipeline(false)
		if err != nil {
			return err
		}
		ctrl, err := view.New(a.engine, pipeline,
			view.SetLogger(a.logger),
			view.SetDecodeOptions(a.decodeOptions()...),
		)
		if err != nil {
			return err
		}

		scr, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := scr.Init(); err != nil {
			return err
		}
		defer scr.Fini()

		target := export.Target{
			Path:   a.cfg.SavePath,
			Width:  a.cfg.TargetWidth,
			Height: a.cfg.TargetHeight,
		}
		v, err := tui.New(scr, ctrl, target,
			tui.SetLogger(a.logger),
			tui.SetOnSave(a.remember),
		)
		if err != nil {
			return err
		}
		// files that fail to load are skipped until one succeeds
		err = ctrl.Open(args)
		for i := 1; err != nil && i < len(args); i++ {
			err = ctrl.Load(i)
		}
		logx.IsErr(err, a, slog.LevelWarn)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := v.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	}
}
