package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/planner"
	"github.com/alexanderramin/lineup/internal/timeline"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Edit the lineup timeline and metadata",
	}

	cmd.AddCommand(
		newPlanShowCmd(app),
		newPlanNewCmd(app),
		newPlanRangeCmd(app),
		newPlanSelectCmd(app),
		newPlanSplitCmd(app),
		newPlanMergeCmd(app),
		newPlanBoundaryCmd(app),
		newPlanHeroCmd(app),
		newPlanRenameCmd(app),
		newPlanTagsCmd(app),
		newPlanStrategyCmd(app),
	)

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the plan and the active segment's board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCurrent(cmd, app)
		},
	}
}

func newPlanNewCmd(app *App) *cobra.Command {
	var from, to int
	var hero string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a fresh plan, discarding the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			if cur.Timeline.HasUserWork() {
				ok, err := confirm(app, "Discard the current plan")
				if err != nil || !ok {
					return err
				}
			}
			p, err := app.Planner.Reset(cmd.Context(), from, to, domain.Hero(hero))
			if domain.HintCodeOf(err) != "" {
				printHint(cmd.OutOrStdout(), err)
				return nil
			}
			if err != nil {
				return err
			}
			return showPlan(cmd, app, p)
		},
	}

	cmd.Flags().IntVar(&from, "from", planner.DefaultDayStart, "First day")
	cmd.Flags().IntVar(&to, "to", planner.DefaultDayEnd, "Last day")
	cmd.Flags().StringVar(&hero, "hero", string(domain.DefaultHero), "Hero")

	return cmd
}

func newPlanRangeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "range <from> <to>",
		Short: "Re-initialise the timeline for a day range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[1])
			}
			cur, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			if cur.Timeline.HasUserWork() {
				ok, err := confirm(app, "Changing the day range clears every segment")
				if err != nil || !ok {
					return err
				}
			}
			return applyAndShow(cmd, app, "apply-day-range", func(p domain.Plan, rng timeline.Rand) (domain.Plan, error) {
				return planner.ApplyDayRange(p, from, to, rng)
			})
		},
	}
}

func newPlanSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <segment>",
		Short: "Make a segment active (1-based)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid segment %q", args[0])
			}
			return applyAndShow(cmd, app, "select-segment", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				return planner.SelectSegment(p, n-1)
			})
		},
	}
}

func newPlanSplitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "split",
		Short: "Split the active segment at its midpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyAndShow(cmd, app, "split-segment", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				return planner.Split(p)
			})
		},
	}
}

func newPlanMergeCmd(app *App) *cobra.Command {
	var right bool

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge the active segment into its left (default) or right neighbour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, op := "merge-left", planner.MergeLeft
			if right {
				name, op = "merge-right", planner.MergeRight
			}
			return applyAndShow(cmd, app, name, func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				return op(p)
			})
		},
	}

	cmd.Flags().BoolVar(&right, "right", false, "Merge the right neighbour into the active segment")

	return cmd
}

func newPlanBoundaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "boundary <segment> <day>",
		Short: "Move the end of a segment (1-based) to a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid segment %q", args[0])
			}
			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[1])
			}
			return applyAndShow(cmd, app, "move-boundary", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				return planner.MoveBoundary(p, n-1, day), nil
			})
		},
	}
}

func newPlanHeroCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hero <name>",
		Short: "Switch the lineup hero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hero := matchHero(args[0])
			cur, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			if hero != cur.Hero() && domain.ValidHeroes[hero] && planner.HeroSwitchDiscardsWork(cur) {
				ok, err := confirm(app, "Switching hero clears every placed card")
				if err != nil || !ok {
					return err
				}
			}
			return applyAndShow(cmd, app, "apply-hero", func(p domain.Plan, rng timeline.Rand) (domain.Plan, error) {
				return planner.ApplyHero(p, hero, rng)
			})
		},
	}
}

// matchHero accepts hero names case-insensitively.
func matchHero(input string) domain.Hero {
	for _, h := range domain.Heroes {
		if strings.EqualFold(string(h), input) {
			return h
		}
	}
	return domain.Hero(input)
}

func newPlanRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name>",
		Short: "Set the lineup name (empty to clear)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return applyAndShow(cmd, app, "rename-lineup", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				return planner.RenameLineup(p, strings.TrimSpace(name)), nil
			})
		},
	}
}

func newPlanTagsCmd(app *App) *cobra.Command {
	var flags tagFlags

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Set the lineup tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !flags.changed(cmd.Flags()) {
				return fmt.Errorf("at least one of --day-plan, --strength or --difficulty is required")
			}
			dayPlan, err := parseTag(flags.dayPlan, domain.DayPlanSlugs, domain.ValidDayPlanTags)
			if err != nil {
				return err
			}
			strength, err := parseTag(flags.strength, domain.StrengthSlugs, domain.ValidStrengthTags)
			if err != nil {
				return err
			}
			difficulty, err := parseTag(flags.difficulty, domain.DifficultySlugs, domain.ValidDifficultyTags)
			if err != nil {
				return err
			}
			return applyAndShow(cmd, app, "set-tags", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				return planner.SetTags(p, planner.Tags{DayPlan: dayPlan, Strength: strength, Difficulty: difficulty})
			})
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newPlanStrategyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "strategy <text>",
		Short: "Set the active segment's strategy note",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return applyAndShow(cmd, app, "set-strategy", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				return planner.SetStrategy(p, text)
			})
		},
	}
}
