package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mealplanner/internal/config"
	"mealplanner/internal/recipe"
	"mealplanner/internal/seed"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	return &config.Config{
		DBPath:        filepath.Join(root, "mealplanner.db"),
		SnapshotDir:   filepath.Join(root, "snapshots"),
		FlushInterval: time.Hour, // keep the ticker out of the way
	}
}

func TestOpenSeedsFreshInstall(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer a.Close()

	week, err := a.Plans.GetWeek(ctx, seed.DemoWeekStart)
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	if len(week.Days) != 7 {
		t.Errorf("Expected 7 seeded days, got %d", len(week.Days))
	}

	count, err := a.Ingredients.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 43 {
		t.Errorf("Expected 43 seeded ingredients, got %d", count)
	}
}

func TestCloseFlushesAndRestartRestores(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	id, err := a.Recipes.Add(ctx, recipe.AddParams{
		Name:     "Restart survivor stew",
		MealType: recipe.Dinner,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := a.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Drop the live database so only the snapshot can bring the recipe back.
	if err := os.Remove(cfg.DBPath); err != nil {
		t.Fatalf("Failed to remove database file: %v", err)
	}

	b, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer b.Close()

	got, err := b.Recipes.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get after restart failed: %v", err)
	}
	if got.Name != "Restart survivor stew" {
		t.Errorf("Expected restored recipe, got %+v", got)
	}
}

func TestOpenSurvivesCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	if err := os.MkdirAll(cfg.SnapshotDir, 0755); err != nil {
		t.Fatalf("Failed to create snapshot dir: %v", err)
	}
	blobPath := filepath.Join(cfg.SnapshotDir, "mealplanner.sqlite")
	if err := os.WriteFile(blobPath, []byte("not base64 at all!!!"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt blob: %v", err)
	}

	a, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open should fall back to a fresh store, got: %v", err)
	}
	defer a.Close()

	count, err := a.Ingredients.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 43 {
		t.Errorf("Expected a freshly seeded store, got %d ingredients", count)
	}
}
