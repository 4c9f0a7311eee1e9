package seed

import (
	"context"
	"path/filepath"
	"testing"

	"mealplanner/internal/database"
	"mealplanner/internal/plan"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	if err := SeedIfEmpty(ctx, db.SQL); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}

	var meals int
	if err := db.SQL.QueryRow("SELECT COUNT(*) FROM meals").Scan(&meals); err != nil {
		t.Fatalf("Count query failed: %v", err)
	}
	if meals != 21 {
		t.Errorf("Expected 21 seeded meals (3 per day x 7 days), got %d", meals)
	}

	var ingredients int
	if err := db.SQL.QueryRow("SELECT COUNT(*) FROM ingredients").Scan(&ingredients); err != nil {
		t.Fatalf("Count query failed: %v", err)
	}
	if ingredients != len(ingredientCatalog) {
		t.Errorf("Expected %d seeded ingredients, got %d", len(ingredientCatalog), ingredients)
	}

	// Every slot of the demo week is scheduled.
	planRepo := plan.NewRepository(db.SQL)
	week, err := planRepo.GetWeek(ctx, DemoWeekStart)
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	for _, day := range plan.WeekDays {
		if len(week.Days[day]) != 3 {
			t.Errorf("Expected 3 meals on %s, got %d", day, len(week.Days[day]))
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	if err := SeedIfEmpty(ctx, db.SQL); err != nil {
		t.Fatalf("First SeedIfEmpty failed: %v", err)
	}

	var before int
	if err := db.SQL.QueryRow("SELECT COUNT(*) FROM meals").Scan(&before); err != nil {
		t.Fatalf("Count query failed: %v", err)
	}

	// Second call must be a no-op: the emptiness precondition no longer holds.
	if err := SeedIfEmpty(ctx, db.SQL); err != nil {
		t.Fatalf("Second SeedIfEmpty failed: %v", err)
	}

	var after int
	if err := db.SQL.QueryRow("SELECT COUNT(*) FROM meals").Scan(&after); err != nil {
		t.Fatalf("Count query failed: %v", err)
	}
	if after != before {
		t.Errorf("Second seed produced rows: %d before, %d after", before, after)
	}
}
