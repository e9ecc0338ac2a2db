package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lineup/internal/cli/formatter"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit the configuration file",
	}
	cmd.AddCommand(newConfigShowCmd(app), newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Config == nil {
				return errors.New("no configuration loaded")
			}
			data, err := toml.Marshal(app.Config)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Dim("# "+app.ConfigPath))
			fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one key, e.g. community.nickname or ui.color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Config == nil || app.ConfigPath == "" {
				return errors.New("no configuration file to write")
			}
			key := strings.ToLower(args[0])
			if err := app.Config.Set(key, args[1]); err != nil {
				return err
			}
			if err := app.Config.SaveTo(app.ConfigPath); err != nil {
				return err
			}
			if key == "community.nickname" {
				app.Nickname = app.Config.Community.Nickname
			}
			printSuccess(cmd.OutOrStdout(), "%s saved to %s", key, app.ConfigPath)
			return nil
		},
	}
}
