package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lineup/internal/cli/formatter"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the card catalog",
	}

	cmd.AddCommand(newCatalogSearchCmd(app), newCatalogShowCmd(app))

	return cmd
}

func newCatalogSearchCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search cards by id or name",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := requireCatalog(app)
			if err != nil {
				return err
			}
			k := domain.CardKind(strings.ToLower(kind))
			switch k {
			case "", domain.KindItem, domain.KindSkill:
			default:
				return fmt.Errorf("unknown kind %q (item, skill)", kind)
			}
			cards := cat.Search(strings.Join(args, " "), k)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCatalog(cards))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Only cards of this kind (item, skill)")

	return cmd
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a catalog card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := requireCatalog(app)
			if err != nil {
				return err
			}
			c, ok := cat.Get(args[0])
			if !ok {
				if c, err = resolveCard(app, args[0], domain.KindItem); err != nil {
					if c, err = resolveCard(app, args[0], domain.KindSkill); err != nil {
						return fmt.Errorf("card not found: %q", args[0])
					}
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCard(c))
			return nil
		},
	}
}
