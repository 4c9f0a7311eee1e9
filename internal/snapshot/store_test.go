package snapshot

import (
	"bytes"
	"errors"
	"testing"
)

func testStore(t *testing.T, store Store) {
	t.Helper()

	if _, err := store.Get("missing"); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("Expected ErrNoSnapshot for missing key, got %v", err)
	}

	if err := store.Put("blob", []byte("first")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := store.Get("blob")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte("first")) {
		t.Errorf("Expected 'first', got %q", got)
	}

	// Put replaces the prior blob.
	if err := store.Put("blob", []byte("second")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err = store.Get("blob")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte("second")) {
		t.Errorf("Expected 'second', got %q", got)
	}

	if err := store.Delete("blob"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get("blob"); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Expected ErrNoSnapshot after delete, got %v", err)
	}

	// Deleting an absent key is fine.
	if err := store.Delete("blob"); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemory())
}

func TestFilesystemStore(t *testing.T) {
	store, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystem failed: %v", err)
	}
	testStore(t, store)
}
