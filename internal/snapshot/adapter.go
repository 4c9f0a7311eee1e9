package snapshot

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/natefinch/atomic"
)

// DefaultKey is the fixed key the database blob is stored under.
const DefaultKey = "mealplanner.sqlite"

// sqliteMagic is the 16-byte header every SQLite database file starts with.
const sqliteMagic = "SQLite format 3\x00"

// Adapter serializes the live database into a Store and back.
type Adapter struct {
	db    *sql.DB
	store Store
	key   string
}

// NewAdapter binds a live database handle to a snapshot store.
func NewAdapter(db *sql.DB, store Store, key string) *Adapter {
	return &Adapter{db: db, store: store, key: key}
}

// Export captures the complete current engine state as a byte sequence.
// VACUUM INTO writes a consistent single-file copy, so the returned bytes
// are an atomic snapshot even if a write lands right after.
func (a *Adapter) Export(ctx context.Context) ([]byte, error) {
	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("mealplanner-export-%d.db", time.Now().UnixNano()))
	defer os.Remove(tmp)

	if _, err := a.db.ExecContext(ctx, "VACUUM INTO ?", tmp); err != nil {
		return nil, fmt.Errorf("failed to export database: %w", err)
	}
	data, err := os.ReadFile(tmp)
	if err != nil {
		return nil, fmt.Errorf("failed to read exported database: %w", err)
	}
	return data, nil
}

// Persist exports the database, base64-encodes the bytes and writes them
// under the adapter's key, replacing any prior blob.
func (a *Adapter) Persist(ctx context.Context) error {
	data, err := a.Export(ctx)
	if err != nil {
		return err
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	if err := a.store.Put(a.key, []byte(encoded)); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// Restore reverses Persist before the database is opened: it decodes the
// stored blob and writes it to dbPath. An absent key means no prior state
// and is not an error. A blob that fails to decode, or whose bytes are not
// a SQLite image, returns ErrCorrupt so the caller can fall back to a
// fresh database instead of crashing.
func Restore(store Store, key, dbPath string) error {
	encoded, err := store.Get(key)
	if err == ErrNoSnapshot {
		return nil
	}
	if err != nil {
		return err
	}

	data, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return fmt.Errorf("%w: invalid base64: %v", ErrCorrupt, err)
	}
	if len(data) < len(sqliteMagic) || string(data[:len(sqliteMagic)]) != sqliteMagic {
		return fmt.Errorf("%w: not a database image", ErrCorrupt)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	if err := atomic.WriteFile(dbPath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to restore database file: %w", err)
	}
	return nil
}

// AutoFlush persists the database on a fixed interval until the returned
// stop function is called. Stopping performs one final synchronous flush;
// flush failures are logged, never surfaced, so teardown stays best-effort.
func (a *Adapter) AutoFlush(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := a.Persist(context.Background()); err != nil {
					log.Printf("Warning: periodic snapshot flush failed: %v", err)
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
			if err := a.Persist(context.Background()); err != nil {
				log.Printf("Warning: final snapshot flush failed: %v", err)
			}
		})
	}
}
