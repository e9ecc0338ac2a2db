package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/lineup/internal/db"
)

// NewTestDB returns a migrated in-memory database closed at test cleanup.
// The pool holds a single connection, so a transaction blocks every other
// query until it ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, ":memory:")
}

// NewFileTestDB returns a migrated database file in a temp directory. All
// pooled connections see the same data, which concurrency tests need.
func NewFileTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "lineup_test.db"))
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("opening test database %s: %v", path, err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW returns a UnitOfWork over database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
