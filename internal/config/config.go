package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults used when the corresponding environment variable is unset.
const (
	DefaultFlushInterval = 30 * time.Second
	defaultDataDir       = "data"
)

// Config holds the configuration for the application.
type Config struct {
	// DBPath is the location of the SQLite database file.
	DBPath string
	// SnapshotDir is where database snapshots are written.
	SnapshotDir string
	// FlushInterval controls how often the snapshot auto-flush runs.
	FlushInterval time.Duration
}

// NewFromEnv creates a new Config object from environment variables.
// Every variable has a usable default so a bare invocation just works.
func NewFromEnv() (*Config, error) {
	dbPath := os.Getenv("MEALPLANNER_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(defaultDataDir, "mealplanner.db")
	}

	snapshotDir := os.Getenv("MEALPLANNER_SNAPSHOT_DIR")
	if snapshotDir == "" {
		snapshotDir = filepath.Join(defaultDataDir, "snapshots")
	}

	flushInterval := DefaultFlushInterval
	if raw := os.Getenv("MEALPLANNER_FLUSH_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid MEALPLANNER_FLUSH_INTERVAL %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("MEALPLANNER_FLUSH_INTERVAL must be positive, got %q", raw)
		}
		flushInterval = d
	}

	return &Config{
		DBPath:        dbPath,
		SnapshotDir:   snapshotDir,
		FlushInterval: flushInterval,
	}, nil
}
