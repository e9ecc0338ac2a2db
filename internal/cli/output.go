package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/lineup/internal/cli/formatter"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/service"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	hintColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// ConfigureColor applies the [ui] color setting: "always", "never" or
// "auto" (color only on a terminal).
func ConfigureColor(mode string, isTerminal bool) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal
	}
}

func printHint(w io.Writer, err error) {
	var h *domain.Hint
	if !errors.As(err, &h) {
		return
	}
	hintColor.Fprintf(w, "! %s (%s)\n", h.Message, h.Code)
}

func printSuccess(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, "✓ "+format+"\n", args...)
}

// PrintError writes a top-level command error.
func PrintError(w io.Writer, err error) {
	errorColor.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)
}

// applyOp runs op on the workspace plan. Hints are printed and reported as
// not applied rather than as errors.
func applyOp(cmd *cobra.Command, app *App, name string, op service.Operation) (domain.Plan, bool, error) {
	p, err := app.Planner.Apply(cmd.Context(), name, op)
	if domain.HintCodeOf(err) != "" {
		printHint(cmd.OutOrStdout(), err)
		return p, false, nil
	}
	if err != nil {
		return p, false, err
	}
	return p, true, nil
}

// applyAndShow runs op and prints the resulting plan.
func applyAndShow(cmd *cobra.Command, app *App, name string, op service.Operation) error {
	p, ok, err := applyOp(cmd, app, name, op)
	if err != nil || !ok {
		return err
	}
	return showPlan(cmd, app, p)
}

func showPlan(cmd *cobra.Command, app *App, p domain.Plan) error {
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(p, boardScale(cmd, app)))
	return nil
}
