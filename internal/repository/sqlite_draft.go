package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/lineup/internal/db"
	"github.com/alexanderramin/lineup/internal/domain"
)

// SQLiteDraftRepo implements DraftRepo using a SQLite database.
type SQLiteDraftRepo struct {
	db db.DBTX
}

// NewSQLiteDraftRepo creates a new SQLiteDraftRepo.
func NewSQLiteDraftRepo(conn db.DBTX) *SQLiteDraftRepo {
	return &SQLiteDraftRepo{db: conn}
}

const draftColumns = `id, name, context_label, payload, created_at, updated_at`

func (r *SQLiteDraftRepo) Save(ctx context.Context, d *domain.Draft) error {
	query := `INSERT INTO drafts (` + draftColumns + `) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			context_label = excluded.context_label,
			payload = excluded.payload,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.ContextLabel,
		string(d.Payload),
		formatTime(d.CreatedAt),
		formatTime(d.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

func (r *SQLiteDraftRepo) GetByID(ctx context.Context, id string) (*domain.Draft, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+draftColumns+` FROM drafts WHERE id = ?`, id)
	d, err := scanDraft(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("draft %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning draft: %w", err)
	}
	return d, nil
}

func (r *SQLiteDraftRepo) List(ctx context.Context) ([]*domain.Draft, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+draftColumns+` FROM drafts ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	var out []*domain.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning draft: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *SQLiteDraftRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("draft %s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDraft(s scanner) (*domain.Draft, error) {
	var (
		d                domain.Draft
		payload          string
		created, updated string
	)
	if err := s.Scan(&d.ID, &d.Name, &d.ContextLabel, &payload, &created, &updated); err != nil {
		return nil, err
	}
	d.Payload = []byte(payload)
	d.CreatedAt = parseTime(created)
	d.UpdatedAt = parseTime(updated)
	return &d, nil
}
