package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"mealplanner/internal/config"
	"mealplanner/internal/database"
	"mealplanner/internal/ingredient"
	"mealplanner/internal/metrics"
	"mealplanner/internal/plan"
	"mealplanner/internal/recipe"
	"mealplanner/internal/seed"
	"mealplanner/internal/shopping"
	"mealplanner/internal/snapshot"
)

// App wires the store, repositories and snapshot machinery together.
// Open builds everything from config; Close flushes and tears it down.
type App struct {
	DB          *database.DB
	Recipes     *recipe.Repository
	Ingredients *ingredient.Repository
	Plans       *plan.Repository
	Shopping    *shopping.Repository
	Metrics     *metrics.Store
	Snapshots   *snapshot.Adapter

	cfg       *config.Config
	stopFlush func()
}

// Open restores the latest snapshot if one exists, opens the database,
// seeds demo data on a fresh install and starts the auto-flush loop.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := snapshot.NewFilesystem(cfg.SnapshotDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	if err := snapshot.Restore(store, snapshot.DefaultKey, cfg.DBPath); err != nil {
		if !errors.Is(err, snapshot.ErrCorrupt) {
			return nil, fmt.Errorf("failed to restore snapshot: %w", err)
		}
		// A corrupt blob must not block startup. Drop the stale database
		// file so migrations rebuild a fresh one.
		log.Printf("Warning: stored snapshot is corrupt, starting fresh: %v", err)
		if err := os.Remove(cfg.DBPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale database: %w", err)
		}
	}

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := seed.SeedIfEmpty(ctx, db.SQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}

	adapter := snapshot.NewAdapter(db.SQL, store, snapshot.DefaultKey)

	a := &App{
		DB:          db,
		Recipes:     recipe.NewRepository(db.SQL),
		Ingredients: ingredient.NewRepository(db.SQL),
		Plans:       plan.NewRepository(db.SQL),
		Shopping:    shopping.NewRepository(db.SQL),
		Metrics:     metrics.NewStore(db.SQL),
		Snapshots:   adapter,
		cfg:         cfg,
	}
	a.stopFlush = adapter.AutoFlush(cfg.FlushInterval)
	return a, nil
}

// Close stops the flush loop (which persists one final snapshot) and
// closes the database.
func (a *App) Close() error {
	if a.stopFlush != nil {
		a.stopFlush()
	}
	return a.DB.Close()
}
