package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return st
}

func TestPutAndGet(t *testing.T) {
	st := newTestStore(t)

	if err := st.Put(KeyAccounts, `[{"id":"1"}]`); err != nil {
		t.Fatalf("put: %v", err)
	}

	value, ok := st.Get(KeyAccounts)
	if !ok {
		t.Fatal("expected key to be present")
	}
	if value != `[{"id":"1"}]` {
		t.Errorf("unexpected value: %s", value)
	}
}

func TestGetMissingKey(t *testing.T) {
	st := newTestStore(t)

	if _, ok := st.Get("no_such_key"); ok {
		t.Error("expected absence for unknown key")
	}
}

func TestPutOverwrites(t *testing.T) {
	st := newTestStore(t)

	if err := st.Put(KeyActiveAccount, `"1"`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := st.Put(KeyActiveAccount, `"2"`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, _ := st.Get(KeyActiveAccount)
	if value != `"2"` {
		t.Errorf("expected overwritten value, got %s", value)
	}
}

func TestKeysAreDisjoint(t *testing.T) {
	st := newTestStore(t)

	st.Put(KeyAccounts, "a")
	st.Put(KeyOperationHistory, "h")

	if value, _ := st.Get(KeyAccounts); value != "a" {
		t.Errorf("accounts key clobbered: %s", value)
	}
	if value, _ := st.Get(KeyOperationHistory); value != "h" {
		t.Errorf("history key clobbered: %s", value)
	}
}

func TestDelete(t *testing.T) {
	st := newTestStore(t)

	st.Put(KeyOperationHistory, "[]")
	if err := st.Delete(KeyOperationHistory); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := st.Get(KeyOperationHistory); ok {
		t.Error("expected key to be gone after delete")
	}

	// Deleting an absent key is not an error.
	if err := st.Delete("no_such_key"); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}
