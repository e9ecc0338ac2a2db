package cli

import (
	"fmt"

	"github.com/alexanderramin/lineup/internal/cli/formatter"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/planner"
	"github.com/alexanderramin/lineup/internal/timeline"
	"github.com/spf13/cobra"
)

func newMarkerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marker",
		Short: "Edit the elemental slot markers",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List markers of the active segment",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := app.Planner.Current(cmd.Context())
				if err != nil {
					return err
				}
				if len(p.Timeline.Segments) == 0 {
					return fmt.Errorf("plan has no segments")
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMarkers(p.Timeline.Segments[p.ActiveIndex()]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <slot>",
			Short: "Add a marker on a slot of the active segment",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				slot, err := parseSlot(args[0])
				if err != nil {
					return err
				}
				return applyAndShow(cmd, app, "add-marker", func(p domain.Plan, rng timeline.Rand) (domain.Plan, error) {
					return planner.AddMarker(p, slot, rng)
				})
			},
		},
		&cobra.Command{
			Use:   "remove <slot|id>",
			Short: "Remove a marker from every segment",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return applyMarkerOp(cmd, app, "remove-marker", args[0], planner.RemoveMarker)
			},
		},
		&cobra.Command{
			Use:   "toggle <slot|id>",
			Short: "Flip a marker between fire and ice",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return applyMarkerOp(cmd, app, "toggle-marker", args[0], planner.ToggleMarker)
			},
		},
	)

	return cmd
}

func applyMarkerOp(cmd *cobra.Command, app *App, name, input string, op func(domain.Plan, string) (domain.Plan, error)) error {
	cur, err := app.Planner.Current(cmd.Context())
	if err != nil {
		return err
	}
	id, err := resolveMarker(cur, input)
	if err != nil {
		return err
	}
	return applyAndShow(cmd, app, name, func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
		return op(p, id)
	})
}
