package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// whole list runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Columns added later already exist on fresh databases.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS drafts (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		payload       TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_drafts_created ON drafts(created_at)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS community_lineups (
		uuid            TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		hero            TEXT NOT NULL,
		day_from        INTEGER NOT NULL,
		day_to          INTEGER NOT NULL,
		day_plan_tag    TEXT,
		strength_tag    TEXT,
		difficulty_tag  TEXT,
		cards_data      TEXT NOT NULL DEFAULT '[]',
		special_slots   TEXT NOT NULL DEFAULT '[]',
		lineup_payload  TEXT NOT NULL,
		version         TEXT NOT NULL DEFAULT 'cli-v1',
		likes_count     INTEGER NOT NULL DEFAULT 0,
		favorites_count INTEGER NOT NULL DEFAULT 0,
		author_name     TEXT NOT NULL,
		video_bv        TEXT,
		video_title     TEXT,
		created_at      TEXT NOT NULL,
		CHECK(day_from >= 1 AND day_to >= day_from)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_community_created ON community_lineups(created_at)`,

	`CREATE TABLE IF NOT EXISTS community_interactions (
		target_uuid      TEXT NOT NULL REFERENCES community_lineups(uuid) ON DELETE CASCADE,
		interaction_type TEXT NOT NULL CHECK(interaction_type IN ('like','favorite')),
		nickname         TEXT NOT NULL,
		created_at       TEXT NOT NULL,
		PRIMARY KEY (target_uuid, interaction_type, nickname)
	)`,

	// Drafts remember the hero they were saved under.
	`ALTER TABLE drafts ADD COLUMN context_label TEXT NOT NULL DEFAULT ''`,
}
