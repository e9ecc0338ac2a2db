package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Edit the active build interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("the board needs an interactive terminal")
			}
			m, err := newBoardModel(cmd.Context(), app)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}
