package metrics

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mealplanner/internal/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db.SQL)
}

func TestRecordAndDailyUsage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, m := range []OpMetric{
		{Op: "recipe.add", DurationMS: 12},
		{Op: "recipe.add", DurationMS: 8},
		{Op: "plan.place", DurationMS: 3},
	} {
		if err := store.Record(ctx, m); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	usage, err := store.GetDailyUsage(ctx, 1)
	if err != nil {
		t.Fatalf("GetDailyUsage failed: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("Expected 2 usage rows, got %d", len(usage))
	}

	byOp := make(map[string]DailyUsage)
	for _, u := range usage {
		byOp[u.Op] = u
	}

	adds := byOp["recipe.add"]
	if adds.Count != 2 || adds.TotalMS != 20 {
		t.Errorf("Expected recipe.add count 2 total 20ms, got %+v", adds)
	}
	if adds.AverageMS != 10 {
		t.Errorf("Expected recipe.add average 10ms, got %v", adds.AverageMS)
	}
	if byOp["plan.place"].Count != 1 {
		t.Errorf("Expected one plan.place row, got %+v", byOp["plan.place"])
	}
}

func TestTimeRecordsAndReturnsFnError(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Time(ctx, "snapshot.persist", func() error { return nil }); err != nil {
		t.Fatalf("Time failed: %v", err)
	}

	usage, err := store.GetDailyUsage(ctx, 1)
	if err != nil {
		t.Fatalf("GetDailyUsage failed: %v", err)
	}
	if len(usage) != 1 || usage[0].Op != "snapshot.persist" {
		t.Fatalf("Expected a snapshot.persist row, got %+v", usage)
	}
}

func TestCleanupRemovesOldMetrics(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	old := OpMetric{Op: "recipe.list", DurationMS: 5, Timestamp: time.Now().UTC().AddDate(0, 0, -60)}
	recent := OpMetric{Op: "recipe.list", DurationMS: 5}
	for _, m := range []OpMetric{old, recent} {
		if err := store.Record(ctx, m); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	if err := store.Cleanup(ctx, 30); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	usage, err := store.GetDailyUsage(ctx, 90)
	if err != nil {
		t.Fatalf("GetDailyUsage failed: %v", err)
	}
	if len(usage) != 1 || usage[0].Count != 1 {
		t.Fatalf("Expected only the recent metric to survive, got %+v", usage)
	}
}
