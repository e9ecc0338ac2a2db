package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lineup/internal/cli/formatter"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/service"
	"github.com/spf13/cobra"
)

func newCommunityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "community",
		Aliases: []string{"hub"},
		Short:   "Publish and browse shared lineups",
	}

	cmd.AddCommand(
		newCommunityPublishCmd(app),
		newCommunityListCmd(app),
		newCommunityShowCmd(app),
		newCommunityOpenCmd(app),
		newCommunityToggleCmd(app, domain.InteractionLike),
		newCommunityToggleCmd(app, domain.InteractionFavorite),
	)

	return cmd
}

func newCommunityPublishCmd(app *App) *cobra.Command {
	var video, title, author string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the workspace plan to the community feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			if author == "" {
				author = app.Nickname
			}
			l, err := app.Community.Publish(cmd.Context(), service.PublishRequest{
				Plan:       p,
				Author:     author,
				VideoBV:    video,
				VideoTitle: title,
			})
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Published %s (%s)", l.Name, formatter.TruncID(l.UUID))
			return nil
		},
	}

	cmd.Flags().StringVar(&video, "video", "", "Bilibili BV id of a guide video")
	cmd.Flags().StringVar(&title, "title", "", "Title of the guide video")
	cmd.Flags().StringVar(&author, "author", "", "Author nickname (default from config)")

	return cmd
}

func newCommunityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the newest shared lineups",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lineups, err := app.Community.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCommunityList(lineups, time.Now()))
			return nil
		},
	}
}

func newCommunityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a shared lineup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveLineup(cmd, app, args[0])
			if err != nil {
				return err
			}
			l, err := app.Community.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCommunityLineup(l, app.Catalog))
			return nil
		},
	}
}

func newCommunityOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Load a shared lineup into the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveLineup(cmd, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Community.Open(cmd.Context(), id)
			if err != nil {
				return err
			}
			cur, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			if cur.Timeline.HasUserWork() {
				ok, err := confirm(app, "Replace the current plan with the shared lineup")
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

func newCommunityToggleCmd(app *App, typ domain.InteractionType) *cobra.Command {
	return &cobra.Command{
		Use:   string(typ) + " <id>",
		Short: fmt.Sprintf("Toggle your %s on a shared lineup", typ),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveLineup(cmd, app, args[0])
			if err != nil {
				return err
			}
			res, err := app.Community.Toggle(cmd.Context(), id, typ, app.Nickname)
			if err != nil {
				return err
			}
			state := "removed"
			if res.Active {
				state = "added"
			}
			printSuccess(cmd.OutOrStdout(), "%s %s (%d total)", typ, state, res.Count)
			return nil
		},
	}
}

func resolveLineup(cmd *cobra.Command, app *App, input string) (string, error) {
	lineups, err := app.Community.List(cmd.Context())
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(lineups))
	for _, l := range lineups {
		ids = append(ids, l.UUID)
	}
	id, err := resolveID("lineup", input, ids)
	if err != nil {
		// Lineups past the feed limit are still reachable by full id.
		if _, getErr := app.Community.Get(cmd.Context(), input); getErr == nil {
			return input, nil
		}
		return "", err
	}
	return id, nil
}
