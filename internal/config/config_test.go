package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("MEALPLANNER_DB_PATH", "")
		t.Setenv("MEALPLANNER_SNAPSHOT_DIR", "")
		t.Setenv("MEALPLANNER_FLUSH_INTERVAL", "")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DBPath != filepath.Join("data", "mealplanner.db") {
			t.Errorf("Unexpected default DBPath: %s", cfg.DBPath)
		}
		if cfg.SnapshotDir != filepath.Join("data", "snapshots") {
			t.Errorf("Unexpected default SnapshotDir: %s", cfg.SnapshotDir)
		}
		if cfg.FlushInterval != DefaultFlushInterval {
			t.Errorf("Expected default flush interval %v, got %v", DefaultFlushInterval, cfg.FlushInterval)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("MEALPLANNER_DB_PATH", "/tmp/custom.db")
		t.Setenv("MEALPLANNER_SNAPSHOT_DIR", "/tmp/snaps")
		t.Setenv("MEALPLANNER_FLUSH_INTERVAL", "2m")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DBPath != "/tmp/custom.db" {
			t.Errorf("Expected DBPath '/tmp/custom.db', got '%s'", cfg.DBPath)
		}
		if cfg.SnapshotDir != "/tmp/snaps" {
			t.Errorf("Expected SnapshotDir '/tmp/snaps', got '%s'", cfg.SnapshotDir)
		}
		if cfg.FlushInterval != 2*time.Minute {
			t.Errorf("Expected flush interval 2m, got %v", cfg.FlushInterval)
		}
	})

	t.Run("MalformedFlushInterval", func(t *testing.T) {
		t.Setenv("MEALPLANNER_FLUSH_INTERVAL", "soon")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for a malformed flush interval, got nil")
		}
	})

	t.Run("NonPositiveFlushInterval", func(t *testing.T) {
		t.Setenv("MEALPLANNER_FLUSH_INTERVAL", "-5s")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for a non-positive flush interval, got nil")
		}
	})
}
