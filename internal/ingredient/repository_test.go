package ingredient

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"mealplanner/internal/database"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func TestAddSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	id, err := repo.Add(ctx, "Banana", "", false)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id != "I00001" {
		t.Errorf("Expected first id 'I00001', got '%s'", id)
	}

	id2, err := repo.Add(ctx, "Oats", "Grains", true)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id2 != "I00002" {
		t.Errorf("Expected second id 'I00002', got '%s'", id2)
	}
}

func TestAddDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.Add(ctx, "Banana", "Produce", false); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	_, err := repo.Add(ctx, "Banana", "Produce", false)
	if !errors.Is(err, database.ErrConstraint) {
		t.Fatalf("Expected ErrConstraint for duplicate name, got %v", err)
	}

	// The failed insert must not have consumed an id.
	id, err := repo.Add(ctx, "Oats", "", false)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id != "I00002" {
		t.Errorf("Expected id 'I00002' after failed insert, got '%s'", id)
	}
}

func TestListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, name := range []string{"Onion", "Banana", "Garlic"} {
		if _, err := repo.Add(ctx, name, "Produce", false); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"Banana", "Garlic", "Onion"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d ingredients, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Expected ingredient %d to be '%s', got '%s'", i, name, got[i].Name)
		}
	}
}

func TestSearchByName(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, name := range []string{"Black beans", "Green beans", "Bread"} {
		if _, err := repo.Add(ctx, name, "", false); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
	}

	t.Run("Substring", func(t *testing.T) {
		got, err := repo.SearchByName(ctx, "beans")
		if err != nil {
			t.Fatalf("SearchByName failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expected 2 matches, got %d", len(got))
		}
		if got[0].Name != "Black beans" || got[1].Name != "Green beans" {
			t.Errorf("Unexpected result order: %v", got)
		}
	})

	t.Run("EmptySubstringReturnsAll", func(t *testing.T) {
		got, err := repo.SearchByName(ctx, "")
		if err != nil {
			t.Fatalf("SearchByName failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("Expected all 3 ingredients, got %d", len(got))
		}
	})
}
