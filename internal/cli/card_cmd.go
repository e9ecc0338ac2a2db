package cli

import (
	"strings"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/planner"
	"github.com/alexanderramin/lineup/internal/timeline"
	"github.com/spf13/cobra"
)

func newCardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Place and edit cards on the active build",
	}

	cmd.AddCommand(
		newCardPlaceCmd(app),
		newCardMoveCmd(app),
		newCardRemoveCmd(app),
		newCardBorderCmd(app),
		newCardRoleCmd(app),
	)

	return cmd
}

func newCardPlaceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "place <card> <slot>",
		Short: "Drop a catalog card on a slot, shifting neighbours as needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := resolveCard(app, args[0], domain.KindItem)
			if err != nil {
				return err
			}
			slot, err := parseSlot(args[1])
			if err != nil {
				return err
			}
			return applyAndShow(cmd, app, "place-card", func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
				out, _, err := planner.CommitDrop(p, planner.DragSource{Card: card.Ref()}, slot)
				return out, err
			})
		},
	}
}

func newCardMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <placement|slot> <slot>",
		Short: "Move a placed card to another slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[1])
			if err != nil {
				return err
			}
			return applyPlacementOp(cmd, app, "move-card", args[0], func(p domain.Plan, id string) (domain.Plan, error) {
				out, _, err := planner.CommitDrop(p, planner.DragSource{PlacementID: id}, slot)
				return out, err
			})
		},
	}
}

func newCardRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <placement|slot>",
		Short: "Remove a placed card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyPlacementOp(cmd, app, "remove-card", args[0], planner.RemoveCard)
		},
	}
}

func newCardBorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "border <placement|slot> <tier>",
		Short: "Set a placed card's border tier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := domain.BorderTier(strings.ToLower(args[1]))
			return applyPlacementOp(cmd, app, "set-border", args[0], func(p domain.Plan, id string) (domain.Plan, error) {
				return planner.SetCardBorder(p, id, tier)
			})
		},
	}
}

func newCardRoleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "role <placement|slot> <core|secondary|support>",
		Short: "Toggle a placed card's role tag",
		Args:  cobra.ExactArgs(2),
		ValidArgs: []string{
			string(domain.RoleCore), string(domain.RoleSecondary), string(domain.RoleSupport),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			role := domain.CardRole(strings.ToLower(args[1]))
			return applyPlacementOp(cmd, app, "toggle-card-role", args[0], func(p domain.Plan, id string) (domain.Plan, error) {
				return planner.ToggleCardRole(p, id, role)
			})
		},
	}
}

// applyPlacementOp resolves a placement against the workspace plan, then
// applies op to it.
func applyPlacementOp(cmd *cobra.Command, app *App, name, input string, op func(domain.Plan, string) (domain.Plan, error)) error {
	cur, err := app.Planner.Current(cmd.Context())
	if err != nil {
		return err
	}
	id, err := resolvePlacement(cur, input)
	if err != nil {
		return err
	}
	return applyAndShow(cmd, app, name, func(p domain.Plan, _ timeline.Rand) (domain.Plan, error) {
		return op(p, id)
	})
}
