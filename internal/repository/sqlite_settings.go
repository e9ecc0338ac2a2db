package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/lineup/internal/db"
)

// SQLiteSettingsRepo implements SettingsRepo as a key-value table.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("setting %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteSettingsRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}
