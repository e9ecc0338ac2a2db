package cli

import (
	"fmt"

	"github.com/alexanderramin/lineup/internal/cli/formatter"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/planner"
	"github.com/alexanderramin/lineup/internal/timeline"
	"github.com/spf13/cobra"
)

func newBuildCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Manage the alternative builds of the active segment",
	}

	cmd.AddCommand(
		newBuildListCmd(app),
		newBuildAddCmd(app),
		newBuildUseCmd(app),
		newBuildDeleteCmd(app),
		newBuildInheritCmd(app),
	)

	return cmd
}

func newBuildListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List builds of the active segment",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBuilds(p))
			return nil
		},
	}
}

func newBuildAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add an empty build and select it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyAndShow(cmd, app, "add-build", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				out, _, err := planner.AddBuild(p)
				return out, err
			})
		},
	}
}

func newBuildUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <build>",
		Short: "Select a build by number, id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveBuild(cur, args[0])
			if err != nil {
				return err
			}
			return applyAndShow(cmd, app, "select-build", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				return planner.SelectBuild(p, id)
			})
		},
	}
}

func newBuildDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <build>",
		Short: "Delete a build of the active segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveBuild(cur, args[0])
			if err != nil {
				return err
			}
			if planner.BuildHasContent(cur, id) {
				ok, err := confirm(app, "Delete a build that has cards")
				if err != nil || !ok {
					return err
				}
			}
			return applyAndShow(cmd, app, "delete-build", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				return planner.DeleteBuild(p, id)
			})
		},
	}
}

func newBuildInheritCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inherit",
		Short: "Copy the previous segment's first build into this one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			segs := cur.Timeline.Segments
			if si := cur.ActiveIndex(); len(segs) > 0 && len(segs[si].Builds) > 0 && segs[si].Builds[0].HasContent() {
				ok, err := confirm(app, "Replace the first build with the previous segment's")
				if err != nil || !ok {
					return err
				}
			}
			return applyAndShow(cmd, app, "inherit-build", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				return planner.InheritPreviousBuild(p)
			})
		},
	}
}
