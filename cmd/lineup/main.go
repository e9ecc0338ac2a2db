package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alexanderramin/lineup/internal/catalog"
	"github.com/alexanderramin/lineup/internal/cli"
	"github.com/alexanderramin/lineup/internal/config"
	"github.com/alexanderramin/lineup/internal/db"
	"github.com/alexanderramin/lineup/internal/repository"
	"github.com/alexanderramin/lineup/internal/service"
	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// systemClipboard adapts the clipboard package to cli.Clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	isTerminal := func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	cli.ConfigureColor(cfg.UI.Color, isTerminal(os.Stdout))

	database, err := db.OpenDB(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	draftRepo := repository.NewSQLiteDraftRepo(database)
	communityRepo := repository.NewSQLiteCommunityRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.Log.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	app := &cli.App{
		Planner:    service.NewPlannerService(settingsRepo, rng, observers...),
		Drafts:     service.NewDraftService(draftRepo, observers...),
		Import:     service.NewImportService(draftRepo, observers...),
		Community:  service.NewCommunityService(communityRepo, uow, observers...),
		Settings:   service.NewSettingsService(settingsRepo, cfg.Board.Scale),
		Catalog:    cat,
		Config:     cfg,
		ConfigPath: config.DefaultConfigPath(),
		Nickname:   cfg.Community.Nickname,
		Clipboard:  systemClipboard{},
		IsInteractive: func() bool {
			return isTerminal(os.Stdin) && isTerminal(os.Stdout)
		},
	}

	return cli.NewRootCmd(app).Execute()
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading card catalog: %w", err)
	}
	return cat, nil
}
