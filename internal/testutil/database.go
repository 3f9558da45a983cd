// Package testutil provides shared test helpers: migrated throwaway stores
// and randomized, valid domain inputs.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/studmoney/internal/storage"
)

// TestStore bundles a migrated in-memory SQLite database with the typed
// adapter built on top of it.
type TestStore struct {
	SQLite  *storage.SQLiteStorage
	Adapter *storage.Adapter
}

// SetupTestStore creates a new in-memory test database.
// It automatically handles migrations and cleanup.
//
// Example:
//
//	store := testutil.SetupTestStore(t)
//	repo := ledger.NewRepository(store.Adapter)
func SetupTestStore(t *testing.T) *TestStore {
	t.Helper()

	db, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	adapter, err := storage.NewAdapter(db)
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	return &TestStore{SQLite: db, Adapter: adapter}
}

// Seed writes raw bytes under key, bypassing the adapter. Useful for
// simulating corrupted records.
func (s *TestStore) Seed(t *testing.T, key, value string) {
	t.Helper()
	if err := s.SQLite.Save(context.Background(), key, []byte(value)); err != nil {
		t.Fatalf("failed to seed %s: %v", key, err)
	}
}
