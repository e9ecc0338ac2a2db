package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)
	for _, table := range []string{"drafts", "settings", "community_lineups", "community_interactions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)
	for _, idx := range []string{"idx_drafts_created", "idx_community_created"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_UpgradesDraftsWithoutContextLabel(t *testing.T) {
	raw, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { raw.Close() })

	_, err = raw.Exec(`CREATE TABLE drafts (
		id TEXT PRIMARY KEY, name TEXT NOT NULL, payload TEXT NOT NULL,
		created_at TEXT NOT NULL, updated_at TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = raw.Exec(`INSERT INTO drafts VALUES ('d1', 'old', '{}', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(raw))

	var label, name string
	require.NoError(t, raw.QueryRow(`SELECT name, context_label FROM drafts WHERE id = 'd1'`).Scan(&name, &label))
	assert.Equal(t, "old", name)
	assert.Equal(t, "", label)
}

func TestForeignKeys_CascadeInteractions(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`INSERT INTO community_lineups (uuid, name, hero, day_from, day_to, lineup_payload, author_name, created_at)
		VALUES ('L1', 'n', 'Mak', 1, 13, '{}', 'a', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO community_interactions VALUES ('L1', 'like', 'bob', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO community_interactions VALUES ('missing', 'like', 'bob', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "interactions must reference a lineup")

	_, err = db.Exec(`DELETE FROM community_lineups WHERE uuid = 'L1'`)
	require.NoError(t, err)
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM community_interactions`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestCheck_DayRange(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`INSERT INTO community_lineups (uuid, name, hero, day_from, day_to, lineup_payload, author_name, created_at)
		VALUES ('L2', 'n', 'Mak', 5, 3, '{}', 'a', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)
}
