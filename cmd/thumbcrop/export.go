package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/srlehn/thumbcrop/export"
	"github.com/srlehn/thumbcrop/raster"
	"github.com/srlehn/thumbcrop/viewport"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	f := exportCmd.Flags()
	f.StringVarP(&exportOutFlag, `output`, `o`, ``, `thumbnail file (.jpg or .png), default from the configuration`)
	f.StringVar(&exportSizeFlag, `size`, ``, `thumbnail bounding size <w>x<h>, default from the configuration`)
	f.StringVar(&exportViewportFlag, `viewport`, ``, `viewport size <w>x<h> the selection refers to, default is the image size`)
	f.StringVar(&exportSelectFlag, `select`, ``, `selection <x0>,<y0>,<x1>,<y1> in viewport coordinates`)
	f.IntVar(&exportRotateFlag, `rotate`, 0, `number of 90° clockwise rotations before fitting`)
	f.BoolVarP(&exportForceFlag, `force`, `f`, false, `overwrite an existing thumbnail`)
}

var exportCmd = &cobra.Command{
	Use:   exportCmdStr + ` <image file>`,
	Short: `export a thumbnail of an image region`,
	Long: `Export a thumbnail of an image region.

The image is fitted into the viewport like in the interactive viewer and
the selection is interpreted in viewport coordinates.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(exportFunc(cmd, args))
	},
}

var (
	exportCmdStr       = `export`
	exportOutFlag      string
	exportSizeFlag     string
	exportViewportFlag string
	exportSelectFlag   string
	exportRotateFlag   int
	exportForceFlag    bool
)

func exportFunc(cmd *cobra.Command, args []string) func(a *app) error {
	return func(a *app) error {
		target := export.Target{
			Path:   a.cfg.SavePath,
			Width:  a.cfg.TargetWidth,
			Height: a.cfg.TargetHeight,
		}
		if len(exportOutFlag) > 0 {
			target.Path = exportOutFlag
		}
		if len(exportSizeFlag) > 0 {
			sz, err := parseTargetSize(exportSizeFlag)
			if err != nil {
				return err
			}
			target.Width, target.Height = sz.X, sz.Y
		}
		var sel *image.Rectangle
		if len(exportSelectFlag) > 0 {
			r, err := parseRect(exportSelectFlag)
			if err != nil {
				return err
			}
			sel = &r
		}

		img, err := raster.DecodeFile(args[0], a.decodeOptions()...)
		if err != nil {
			return err
		}
		for i := 0; i < ((exportRotateFlag%4)+4)%4; i++ {
			img = img.RotateRight90()
		}
		vp := img.Size()
		if len(exportViewportFlag) > 0 {
			if vp, err = parseSize(exportViewportFlag); err != nil {
				return err
			}
		}
		pl := viewport.Fit(img.Size(), vp)

		pipeline, err := a.pipeline(exportForceFlag)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		path, err := pipeline.Export(ctx, img, pl, sel, target)
		if err != nil {
			return err
		}
		target.Path = path
		a.remember(target)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}
}
