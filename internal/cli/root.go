package cli

import (
	"fmt"

	"github.com/alexanderramin/lineup/internal/catalog"
	"github.com/alexanderramin/lineup/internal/config"
	"github.com/alexanderramin/lineup/internal/service"
	"github.com/spf13/cobra"
)

// Clipboard is the system clipboard used to share plan snapshots.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// App holds references to all services used by CLI commands.
type App struct {
	Planner   service.PlannerService
	Drafts    service.DraftService
	Import    service.ImportService
	Community service.CommunityService
	Settings  service.SettingsService
	Catalog   *catalog.Catalog

	// Config is the loaded configuration; "lineup config set" writes it
	// back to ConfigPath.
	Config     *config.Config
	ConfigPath string

	// Nickname identifies the user when publishing and liking.
	Nickname  string
	Clipboard Clipboard

	// IsInteractive reports whether prompts and the board view may be shown.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Defaults to a huh confirm form.
	Confirm func(title string) (bool, error)

	assumeYes bool
}

// NewRootCmd creates the top-level "lineup" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lineup",
		Short:         "Day-by-day card lineup planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCurrent(cmd, app)
		},
	}
	addConfirmFlag(root.PersistentFlags(), &app.assumeYes)

	root.AddCommand(
		newPlanCmd(app),
		newCardCmd(app),
		newBuildCmd(app),
		newSkillCmd(app),
		newMarkerCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newDraftCmd(app),
		newCommunityCmd(app),
		newCatalogCmd(app),
		newScaleCmd(app),
		newBoardCmd(app),
		newConfigCmd(app),
	)

	return root
}

func showCurrent(cmd *cobra.Command, app *App) error {
	p, err := app.Planner.Current(cmd.Context())
	if err != nil {
		return err
	}
	return showPlan(cmd, app, p)
}

func boardScale(cmd *cobra.Command, app *App) float64 {
	if app.Settings == nil {
		return 1
	}
	scale, err := app.Settings.BoardScale(cmd.Context())
	if err != nil {
		return 1
	}
	return scale
}

func requireCatalog(app *App) (*catalog.Catalog, error) {
	if app.Catalog == nil {
		return nil, fmt.Errorf("no card catalog loaded")
	}
	return app.Catalog, nil
}
