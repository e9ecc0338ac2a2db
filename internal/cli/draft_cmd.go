package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lineup/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Save and restore named drafts",
	}

	cmd.AddCommand(
		newDraftListCmd(app),
		newDraftSaveCmd(app),
		newDraftLoadCmd(app),
		newDraftDeleteCmd(app),
	)

	return cmd
}

func newDraftListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved drafts, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := app.Drafts.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDraftList(drafts, time.Now()))
			return nil
		},
	}
}

func newDraftSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save [name]",
		Short: "Save the workspace plan as a draft",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			d, err := app.Drafts.Save(cmd.Context(), strings.Join(args, " "), p)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Saved draft %s (%s)", d.Name, formatter.TruncID(d.ID))
			return nil
		},
	}
}

func newDraftLoadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load <id>",
		Short: "Replace the workspace plan with a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveDraft(cmd, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Drafts.Load(cmd.Context(), id)
			if err != nil {
				return err
			}
			cur, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			if cur.Timeline.HasUserWork() {
				ok, err := confirm(app, "Replace the current plan with the draft")
				if err != nil || !ok {
					return err
				}
			}
			if err := app.Planner.Save(cmd.Context(), p); err != nil {
				return err
			}
			return showPlan(cmd, app, p)
		},
	}
}

func newDraftDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a draft",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveDraft(cmd, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, "Delete the draft")
			if err != nil || !ok {
				return err
			}
			if err := app.Drafts.Delete(cmd.Context(), id); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Deleted draft %s", formatter.TruncID(id))
			return nil
		},
	}
}

func resolveDraft(cmd *cobra.Command, app *App, input string) (string, error) {
	drafts, err := app.Drafts.List(cmd.Context())
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(drafts))
	for _, d := range drafts {
		ids = append(ids, d.ID)
	}
	return resolveID("draft", input, ids)
}
