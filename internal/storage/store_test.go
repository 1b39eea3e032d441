// ABOUTME: Tests for Store implementations.
// ABOUTME: Runs the same get/set/delete contract against every backend.
package storage

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"
)

// setupTestDB creates a SQLite store in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "coach.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func backends(t *testing.T) map[string]Store {
	t.Helper()

	disk, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	t.Cleanup(func() { _ = disk.Close() })

	mem, err := OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("OpenBadgerInMemory failed: %v", err)
	}
	t.Cleanup(func() { _ = mem.Close() })

	return map[string]Store{
		"sqlite":          setupTestDB(t),
		"badger":          disk,
		"badger-inmemory": mem,
		"memory":          NewMemoryStore(),
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get("athleteToken"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get on empty store: want ErrNotFound, got %v", err)
			}

			if err := s.Set("athleteToken", "abc"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, err := s.Get("athleteToken")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got != "abc" {
				t.Errorf("Get = %q, want %q", got, "abc")
			}

			// Overwrite
			if err := s.Set("athleteToken", "def"); err != nil {
				t.Fatalf("Set overwrite failed: %v", err)
			}
			if got, _ := s.Get("athleteToken"); got != "def" {
				t.Errorf("Get after overwrite = %q, want %q", got, "def")
			}

			if err := s.Delete("athleteToken"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, err := s.Get("athleteToken"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get after delete: want ErrNotFound, got %v", err)
			}

			// Deleting a missing key is fine
			if err := s.Delete("nope"); err != nil {
				t.Errorf("Delete missing key: %v", err)
			}
		})
	}
}

func TestStoreKeys(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			keyer, ok := s.(Keyer)
			if !ok {
				t.Skip("backend does not list keys")
			}
			_ = s.Set("trainerId", "7")
			_ = s.Set("trainerToken", "tok")

			keys, err := keyer.Keys()
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			sort.Strings(keys)
			if len(keys) != 2 || keys[0] != "trainerId" || keys[1] != "trainerToken" {
				t.Errorf("Keys = %v", keys)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coach.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.Set("athleteId", "12"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	_ = db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	got, err := db.Get("athleteId")
	if err != nil || got != "12" {
		t.Errorf("Get after reopen = %q, %v", got, err)
	}
	if db.Path() != path {
		t.Errorf("Path() = %s, want %s", db.Path(), path)
	}
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir(); got != filepath.Join("/tmp/xdg-data", "coach") {
		t.Errorf("DataDir() = %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/xdg-data", "coach", "coach.db") {
		t.Errorf("DefaultDBPath() = %s", got)
	}
}
