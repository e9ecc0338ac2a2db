package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultBoardScale, cfg.Board.Scale)
	assert.Equal(t, "auto", cfg.UI.Color)
	assert.Equal(t, "anonymous", cfg.Community.Nickname)
	assert.NotEmpty(t, cfg.Storage.DBPath)
	assert.False(t, cfg.Log.UseCases)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Board, cfg.Board)
}

func TestLoadFrom_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
db_path = "/tmp/lineup-test.db"

[catalog]
path = "/tmp/cards.json"

[community]
nickname = "chef"

[board]
scale = 1.3

[ui]
color = "never"

[log]
use_cases = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/lineup-test.db", cfg.Storage.DBPath)
	assert.Equal(t, "/tmp/cards.json", cfg.Catalog.Path)
	assert.Equal(t, "chef", cfg.Community.Nickname)
	assert.InDelta(t, 1.3, cfg.Board.Scale, 1e-9)
	assert.Equal(t, "never", cfg.UI.Color)
	assert.True(t, cfg.Log.UseCases)
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[community]\nnickname = \"solo\"\n"), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "solo", cfg.Community.Nickname)
	assert.Equal(t, DefaultBoardScale, cfg.Board.Scale)
	assert.Equal(t, "auto", cfg.UI.Color)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("LINEUP_DB", "/tmp/env.db")
	t.Setenv("LINEUP_CATALOG", "/tmp/env-cards.toml")
	t.Setenv("LINEUP_NICKNAME", "env-user")
	t.Setenv("LINEUP_LOG_USE_CASES", "true")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.DBPath)
	assert.Equal(t, "/tmp/env-cards.toml", cfg.Catalog.Path)
	assert.Equal(t, "env-user", cfg.Community.Nickname)
	assert.True(t, cfg.Log.UseCases)
}

func TestLoadFrom_BadEnvBool(t *testing.T) {
	t.Setenv("LINEUP_LOG_USE_CASES", "sometimes")
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "LINEUP_LOG_USE_CASES")
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[board\nscale = "), 0o644))
	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }, "db_path"},
		{"blank nickname", func(c *Config) { c.Community.Nickname = "  " }, "nickname"},
		{"scale too small", func(c *Config) { c.Board.Scale = 0.5 }, "board scale"},
		{"scale too large", func(c *Config) { c.Board.Scale = 2 }, "board scale"},
		{"color mode", func(c *Config) { c.UI.Color = "rainbow" }, "color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestRoundScale(t *testing.T) {
	assert.InDelta(t, 0.8, RoundScale(0.1), 1e-9)
	assert.InDelta(t, 1.6, RoundScale(9), 1e-9)
	assert.InDelta(t, 1.2, RoundScale(1.24), 1e-9)
	assert.InDelta(t, 1.3, RoundScale(1.25), 1e-9)
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Community.Nickname = "saver"
	cfg.Board.Scale = 1.4
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("community.nickname", "pilot"))
	require.NoError(t, cfg.Set("board.scale", "1.3"))
	require.NoError(t, cfg.Set("ui.color", "NEVER"))
	require.NoError(t, cfg.Set("log.use_cases", "true"))

	assert.Equal(t, "pilot", cfg.Community.Nickname)
	assert.InDelta(t, 1.3, cfg.Board.Scale, 1e-9)
	assert.Equal(t, "never", cfg.UI.Color)
	assert.True(t, cfg.Log.UseCases)
}

func TestSet_RejectsAndKeepsValue(t *testing.T) {
	cfg := Default()

	assert.ErrorContains(t, cfg.Set("board.scale", "3"), "outside")
	assert.ErrorContains(t, cfg.Set("board.scale", "big"), "board.scale")
	assert.ErrorContains(t, cfg.Set("community.nickname", "  "), "nickname")
	assert.ErrorContains(t, cfg.Set("ui.theme", "dark"), "unknown config key")
	assert.Equal(t, Default(), cfg)
}
