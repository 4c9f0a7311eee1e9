package metrics

import (
	"context"
	"database/sql"
	"time"

	metricsdb "mealplanner/internal/metrics/metrics_db"
)

// OpMetric records the duration of a single store operation.
type OpMetric struct {
	Op         string
	DurationMS int64
	Timestamp  time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	queries *metricsdb.Queries
	db      *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		queries: metricsdb.New(db),
		db:      db,
	}
}

// Record saves a metric to the database.
func (s *Store) Record(ctx context.Context, m OpMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	return s.queries.InsertOpMetric(ctx, metricsdb.InsertOpMetricParams{
		Op:         m.Op,
		DurationMs: m.DurationMS,
		Timestamp:  ts,
	})
}

// Time runs fn and records how long it took under the given op name.
// The metric write is best-effort; fn's error is what gets returned.
func (s *Store) Time(ctx context.Context, op string, fn func() error) error {
	start := time.Now()
	err := fn()
	_ = s.Record(ctx, OpMetric{Op: op, DurationMS: time.Since(start).Milliseconds()})
	return err
}

// DailyUsage represents operation totals for a single day.
type DailyUsage struct {
	Date      string
	Op        string
	Count     int
	TotalMS   int64
	AverageMS float64
}

// GetDailyUsage retrieves usage for the last N days.
func (s *Store) GetDailyUsage(ctx context.Context, days int) ([]DailyUsage, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.queries.GetDailyUsage(ctx, since)
	if err != nil {
		return nil, err
	}

	var results []DailyUsage
	for _, r := range rows {
		u := DailyUsage{
			Op:    r.Op,
			Count: int(r.Count),
		}

		if day, ok := r.Day.(string); ok {
			u.Date = day
		} else {
			u.Date = "Unknown"
		}

		if r.TotalMs.Valid {
			u.TotalMS = int64(r.TotalMs.Float64)
		}
		if u.Count > 0 {
			u.AverageMS = float64(u.TotalMS) / float64(u.Count)
		}

		results = append(results, u)
	}
	return results, nil
}

// Cleanup removes records older than the specified number of days.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) error {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	return s.queries.CleanupOpMetrics(ctx, threshold)
}
