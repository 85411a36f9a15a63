package state

import (
	"path/filepath"
	"testing"
)

// setupTestDB creates a new temporary database for testing.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestGetUnsetKeyReturnsEmpty(t *testing.T) {
	db := setupTestDB(t)
	got, err := db.Get("active_result_tab")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "" {
		t.Errorf("Get on unset key = %q, want empty", got)
	}
}

func TestSetAndGet(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Set("active_result_tab", "raw-data"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := db.Get("active_result_tab")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "raw-data" {
		t.Errorf("Get = %q, want raw-data", got)
	}
}

func TestSetOverwritesPreviousValue(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Set("active_result_tab", "raw-data"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set("active_result_tab", "configuration"); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}

	got, err := db.Get("active_result_tab")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "configuration" {
		t.Errorf("Get = %q, want configuration (last writer wins)", got)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := db.Set("active_result_tab", "token-status"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db2.Close()
	if err := db2.Migrate(); err != nil {
		t.Fatalf("Migrate after reopen: %v", err)
	}

	got, err := db2.Get("active_result_tab")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got != "token-status" {
		t.Errorf("Get after reopen = %q, want token-status", got)
	}
}
