// Package config loads lineup settings from defaults, a TOML file and
// environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Board scale bounds shared with the settings store.
const (
	MinBoardScale     = 0.8
	MaxBoardScale     = 1.6
	DefaultBoardScale = 1.0
)

// Config holds the application configuration.
type Config struct {
	Storage   StorageConfig   `toml:"storage"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Community CommunityConfig `toml:"community"`
	Board     BoardConfig     `toml:"board"`
	UI        UIConfig        `toml:"ui"`
	Log       LogConfig       `toml:"log"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// CatalogConfig points at a card catalog file. Empty uses the built-in one.
type CatalogConfig struct {
	Path string `toml:"path"`
}

// CommunityConfig holds the identity used when publishing and liking.
type CommunityConfig struct {
	Nickname string `toml:"nickname"`
}

// BoardConfig holds the initial board scale; the settings store wins once
// the user changes it.
type BoardConfig struct {
	Scale float64 `toml:"scale"`
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	Color string `toml:"color"` // "auto", "always", "never"
}

// LogConfig controls structured use-case logging.
type LogConfig struct {
	UseCases bool `toml:"use_cases"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage:   StorageConfig{DBPath: defaultDBPath()},
		Community: CommunityConfig{Nickname: "anonymous"},
		Board:     BoardConfig{Scale: DefaultBoardScale},
		UI:        UIConfig{Color: "auto"},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lineup.db"
	}
	return filepath.Join(home, ".lineup", "lineup.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "lineup", "config.toml")
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom starts with defaults, overlays the file at path if it exists,
// applies environment overrides and validates the result.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LINEUP_DB"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("LINEUP_CATALOG"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("LINEUP_NICKNAME"); v != "" {
		cfg.Community.Nickname = v
	}
	if v := os.Getenv("LINEUP_LOG_USE_CASES"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LINEUP_LOG_USE_CASES: %w", err)
		}
		cfg.Log.UseCases = on
	}
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var validColorModes = map[string]bool{"auto": true, "always": true, "never": true}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if strings.TrimSpace(c.Community.Nickname) == "" {
		return errors.New("community nickname must not be empty")
	}
	if c.Board.Scale < MinBoardScale || c.Board.Scale > MaxBoardScale {
		return fmt.Errorf("board scale %.2f outside %.1f-%.1f", c.Board.Scale, MinBoardScale, MaxBoardScale)
	}
	if !validColorModes[c.UI.Color] {
		return fmt.Errorf("invalid ui color mode %q", c.UI.Color)
	}
	return nil
}

// RoundScale clamps a board scale into range and rounds it to one decimal.
func RoundScale(v float64) float64 {
	v = math.Max(MinBoardScale, math.Min(MaxBoardScale, v))
	return math.Round(v*10) / 10
}

// Keys lists the settings accepted by Set, in file order.
var Keys = []string{
	"storage.db_path",
	"catalog.path",
	"community.nickname",
	"board.scale",
	"ui.color",
	"log.use_cases",
}

// Set assigns one dotted key such as "ui.color" and revalidates. On error
// the configuration is left unchanged.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "storage.db_path":
		next.Storage.DBPath = expandPath(value)
	case "catalog.path":
		next.Catalog.Path = expandPath(value)
	case "community.nickname":
		next.Community.Nickname = value
	case "board.scale":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		next.Board.Scale = v
	case "ui.color":
		next.UI.Color = strings.ToLower(value)
	case "log.use_cases":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		next.Log.UseCases = on
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
