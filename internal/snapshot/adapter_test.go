package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"mealplanner/internal/database"
	"mealplanner/internal/ingredient"
	"mealplanner/internal/recipe"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	srcPath := filepath.Join(dir, "src.db")
	src, err := database.NewDB(srcPath)
	if err != nil {
		t.Fatalf("Failed to open source database: %v", err)
	}
	defer src.Close()

	recipes := recipe.NewRepository(src.SQL)
	for _, name := range []string{"Chicken Pot Pie", "Caprese Sandwich"} {
		if _, err := recipes.Add(ctx, recipe.AddParams{Name: name, MealType: recipe.Dinner}); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
	}
	ingredients := ingredient.NewRepository(src.SQL)
	if _, err := ingredients.Add(ctx, "Basil", "Produce", false); err != nil {
		t.Fatalf("Add ingredient failed: %v", err)
	}

	want, err := recipes.List(ctx, recipe.SortNameAsc)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	wantIngredients, err := ingredients.List(ctx)
	if err != nil {
		t.Fatalf("List ingredients failed: %v", err)
	}

	store := NewMemory()
	adapter := NewAdapter(src.SQL, store, DefaultKey)
	if err := adapter.Persist(ctx); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	// Restore into a fresh path and verify the data is element-for-element
	// identical to the source.
	dstPath := filepath.Join(dir, "dst.db")
	if err := Restore(store, DefaultKey, dstPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	dst, err := database.NewDB(dstPath)
	if err != nil {
		t.Fatalf("Failed to open restored database: %v", err)
	}
	defer dst.Close()

	got, err := recipe.NewRepository(dst.SQL).List(ctx, recipe.SortNameAsc)
	if err != nil {
		t.Fatalf("List on restored database failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Restored recipes differ (-want +got):\n%s", diff)
	}

	gotIngredients, err := ingredient.NewRepository(dst.SQL).List(ctx)
	if err != nil {
		t.Fatalf("List ingredients on restored database failed: %v", err)
	}
	if diff := cmp.Diff(wantIngredients, gotIngredients); diff != "" {
		t.Errorf("Restored ingredients differ (-want +got):\n%s", diff)
	}
}

func TestExportProducesDatabaseImage(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	data, err := NewAdapter(db.SQL, NewMemory(), DefaultKey).Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(data) < len(sqliteMagic) || !strings.HasPrefix(string(data), sqliteMagic) {
		t.Errorf("Export did not produce a SQLite image (got %d bytes)", len(data))
	}
}

func TestRestoreMissingKeyIsFreshState(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fresh.db")
	if err := Restore(NewMemory(), DefaultKey, dbPath); err != nil {
		t.Fatalf("Expected no error for absent snapshot, got %v", err)
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Error("Restore created a database file despite no snapshot")
	}
}

func TestRestoreCorruptBlob(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fresh.db")

	t.Run("InvalidBase64", func(t *testing.T) {
		store := NewMemory()
		if err := store.Put(DefaultKey, []byte("not base64 at all!!!")); err != nil {
			t.Fatal(err)
		}
		err := Restore(store, DefaultKey, dbPath)
		if !errors.Is(err, ErrCorrupt) {
			t.Fatalf("Expected ErrCorrupt, got %v", err)
		}
	})

	t.Run("NotADatabaseImage", func(t *testing.T) {
		store := NewMemory()
		// Valid base64, but the decoded bytes lack the SQLite header.
		if err := store.Put(DefaultKey, []byte("aGVsbG8gd29ybGQsIG5vdCBhIGRhdGFiYXNl")); err != nil {
			t.Fatal(err)
		}
		err := Restore(store, DefaultKey, dbPath)
		if !errors.Is(err, ErrCorrupt) {
			t.Fatalf("Expected ErrCorrupt, got %v", err)
		}
	})
}
