package database

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

// NewTestDB opens a fresh in-memory SQLite database with all migrations
// applied. It is closed when the test ends.
func NewTestDB(t testing.TB) *DB {
	t.Helper()

	db, err := Open(SQLite, ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := NewMigrator(db, zap.NewNop()).Run(context.Background()); err != nil {
		db.Close()
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
