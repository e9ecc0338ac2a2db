package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/lineup/internal/db"
)

// FailOnNthExecUoW runs fn in a real transaction but fails the FailOn-th
// write (1-based) with Err, so callers can check that earlier writes of the
// same transaction were rolled back. Reads are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	mu       sync.Mutex
	executed []string
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &countingTx{DBTX: tx, uow: u}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Executed returns the first word of every write attempted so far, in
// order, including the one that failed.
func (u *FailOnNthExecUoW) Executed() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.executed...)
}

func (u *FailOnNthExecUoW) record(query string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	verb, _, _ := strings.Cut(strings.TrimSpace(query), " ")
	u.executed = append(u.executed, strings.ToUpper(verb))
	return len(u.executed)
}

type countingTx struct {
	db.DBTX
	uow *FailOnNthExecUoW
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.uow.record(query) == c.uow.FailOn {
		return nil, c.uow.Err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
