package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/thumbcrop/internal/errors"
	"github.com/srlehn/thumbcrop/viewport"
)

func init() { rootCmd.AddCommand(fitCmd) }

var fitCmd = &cobra.Command{
	Use:   fitCmdStr,
	Short: `fit an image size into a viewport`,
	Long: `Fit an image size into a viewport.

` + fitUsageStr + `

Prints the displayed size, its offset in the viewport and the zoom.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(fitFunc(cmd, args))
	},
}

var (
	fitCmdStr   = `fit`
	fitUsageStr = `usage: ` + os.Args[0] + ` ` + fitCmdStr + ` <srcSize(<w>x<h>)> <viewportSize(<w>x<h>)>`
)

func fitFunc(cmd *cobra.Command, args []string) func(a *app) error {
	return func(a *app) error {
		src, err := parseSize(args[0])
		if err != nil {
			return errors.New(fitUsageStr)
		}
		vp, err := parseSize(args[1])
		if err != nil {
			return errors.New(fitUsageStr)
		}
		pl := viewport.Fit(src, vp)
		box := pl.Box()
		fmt.Fprintf(cmd.OutOrStdout(), "size:   %dx%d\norigin: %d,%d\nbox:    %d,%d,%d,%d\nzoom:   %d%%\n",
			pl.Size.X, pl.Size.Y, pl.Origin.X, pl.Origin.Y,
			box.Min.X, box.Min.Y, box.Max.X, box.Max.Y, pl.Percent())
		return nil
	}
}
