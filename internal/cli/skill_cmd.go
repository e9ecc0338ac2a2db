package cli

import (
	"strings"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/planner"
	"github.com/alexanderramin/lineup/internal/timeline"
	"github.com/spf13/cobra"
)

func newSkillCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Attach skills to the active segment",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <skill>",
			Short: "Attach a catalog skill",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				card, err := resolveCard(app, args[0], domain.KindSkill)
				if err != nil {
					return err
				}
				return applyAndShow(cmd, app, "add-skill", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
					return planner.AddSkill(p, card.Ref())
				})
			},
		},
		&cobra.Command{
			Use:   "remove <skill>",
			Short: "Detach a skill",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return applySkillOp(cmd, app, "remove-skill", args[0], planner.RemoveSkill)
			},
		},
		&cobra.Command{
			Use:       "role <skill> <core|important|optional>",
			Short:     "Toggle a skill's role tag",
			Args:      cobra.ExactArgs(2),
			ValidArgs: []string{string(domain.SkillCore), string(domain.SkillImportant), string(domain.SkillOptional)},
			RunE: func(cmd *cobra.Command, args []string) error {
				role := domain.SkillRole(strings.ToLower(args[1]))
				return applySkillOp(cmd, app, "toggle-skill-role", args[0], func(p domain.Plan, id string) (domain.Plan, error) {
					return planner.ToggleSkillRole(p, id, role)
				})
			},
		},
	)

	return cmd
}

func applySkillOp(cmd *cobra.Command, app *App, name, input string, op func(domain.Plan, string) (domain.Plan, error)) error {
	cur, err := app.Planner.Current(cmd.Context())
	if err != nil {
		return err
	}
	id, err := resolveSkill(app, cur, input)
	if err != nil {
		return err
	}
	return applyAndShow(cmd, app, name, func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
		return op(p, id)
	})
}
