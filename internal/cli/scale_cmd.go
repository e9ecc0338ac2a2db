package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newScaleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "scale [value]",
		Short: "Show or set the board scale (0.8-1.6)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%.1f\n", boardScale(cmd, app))
				return nil
			}
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid scale %q", args[0])
			}
			stored, err := app.Settings.SetBoardScale(cmd.Context(), v)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Board scale set to %.1f", stored)
			return nil
		},
	}
}
