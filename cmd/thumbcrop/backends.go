package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srlehn/thumbcrop/resize"
)

func init() { rootCmd.AddCommand(backendsCmd) }

var backendsCmd = &cobra.Command{
	Use:   `backends`,
	Short: `list resizer names for --fast and --quality`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(a *app) error {
			for _, name := range resize.Names() {
				mark := ``
				switch name {
				case a.cfg.FastResizer:
					mark = ` (fast)`
				case a.cfg.QualityResizer:
					mark = ` (quality)`
				}
				fmt.Fprintln(cmd.OutOrStdout(), name+mark)
			}
			return nil
		})
	},
}
