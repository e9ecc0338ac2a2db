package cli

import (
	"fmt"

	"github.com/alexanderramin/lineup/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// lineupHuhTheme styles huh forms with the formatter palette.
func lineupHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	return t
}

func confirmForm(title, description string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(lineupHuhTheme()).WithShowHelp(false)
}

// HuhConfirm asks title with a huh confirm form.
func HuhConfirm(title string) (bool, error) {
	var ok bool
	if err := confirmForm(title, "This cannot be undone.", &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// confirm asks before a destructive edit. --yes skips the question; without
// a terminal the edit is refused.
func confirm(app *App, title string) (bool, error) {
	if app.assumeYes {
		return true, nil
	}
	if app.IsInteractive == nil || !app.IsInteractive() {
		return false, fmt.Errorf("%s: rerun with --yes to confirm", title)
	}
	ask := app.Confirm
	if ask == nil {
		ask = HuhConfirm
	}
	return ask(title)
}
