package db

import (
	"context"
	"database/sql"
)

// DBTX is what the draft, settings and community repositories query
// through. *sql.DB serves plain reads and single-row saves; *sql.Tx serves
// the interaction toggles run inside a UnitOfWork.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
