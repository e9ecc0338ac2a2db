package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/lineup/internal/importer"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the plan as a shareable JSON snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			data, err := importer.Export(p)
			if err != nil {
				return fmt.Errorf("encoding plan: %w", err)
			}

			switch {
			case toClipboard:
				if app.Clipboard == nil {
					return fmt.Errorf("clipboard is not available")
				}
				if err := app.Clipboard.WriteAll(string(data)); err != nil {
					return fmt.Errorf("writing clipboard: %w", err)
				}
				printSuccess(cmd.OutOrStdout(), "Copied %s to the clipboard", p.DisplayName())
			case out != "":
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", out, err)
				}
				printSuccess(cmd.OutOrStdout(), "Exported %s to %s", p.DisplayName(), out)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the snapshot to a file")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy the snapshot to the clipboard")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var fromClipboard bool
	var draftName string

	cmd := &cobra.Command{
		Use:   "import [file|-]",
		Short: "Import a shared JSON snapshot",
		Long:  "Import a shared JSON snapshot from a file, stdin (-) or the clipboard.\nThe snapshot replaces the workspace plan unless --draft is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSnapshot(cmd, app, args, fromClipboard)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("draft") {
				d, err := app.Import.ImportAsDraft(cmd.Context(), data, draftName)
				if err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Imported as draft %s (%s)", d.Name, d.ID)
				return nil
			}

			p, err := app.Import.Import(cmd.Context(), data)
			if err != nil {
				return err
			}
			cur, err := app.Planner.Current(cmd.Context())
			if err != nil {
				return err
			}
			if cur.Timeline.HasUserWork() {
				ok, err := confirm(app, "Replace the current plan with the import")
				if err != nil || !ok {
					return err
				}
			}
			if err := app.Planner.Save(cmd.Context(), p); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Imported %s", p.DisplayName())
			return showPlan(cmd, app, p)
		},
	}

	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Read the snapshot from the clipboard")
	cmd.Flags().StringVar(&draftName, "draft", "", "Save the import as a draft with this name instead")

	return cmd
}

func readSnapshot(cmd *cobra.Command, app *App, args []string, fromClipboard bool) ([]byte, error) {
	switch {
	case fromClipboard:
		if len(args) > 0 {
			return nil, fmt.Errorf("--clipboard cannot be combined with a file")
		}
		if app.Clipboard == nil {
			return nil, fmt.Errorf("clipboard is not available")
		}
		text, err := app.Clipboard.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("reading clipboard: %w", err)
		}
		return []byte(text), nil
	case len(args) == 0 || args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading import file: %w", err)
		}
		return data, nil
	}
}
