package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mealplanner/internal/database"
	plandb "mealplanner/internal/plan/plan_db"
	"mealplanner/internal/recipe"
)

// Repository is a database-backed repository for weekly plans, meal
// instances and the append-only plan log.
type Repository struct {
	queries *plandb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: plandb.New(d),
		db:      d,
	}
}

// EnsureWeek creates the week row and its 7 day rows if absent. Safe to
// call every time a week is viewed.
func (r *Repository) EnsureWeek(ctx context.Context, startDate string) error {
	dates, err := weekDates(startDate)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	if err := q.InsertWeek(ctx, startDate); err != nil {
		return fmt.Errorf("failed to insert week %s: %w", startDate, err)
	}
	for _, d := range dates {
		if err := q.InsertDay(ctx, plandb.InsertDayParams{Date: d, WeekStartDate: startDate}); err != nil {
			return fmt.Errorf("failed to insert day %s: %w", d, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit week creation: %w", err)
	}
	return nil
}

// GetWeek returns the full grid for one week. All 7 days are present even
// when nothing is scheduled; filled slots come from the left join across
// day_plans, day_meals and meals. The weekday name is derived from the
// stored date.
func (r *Repository) GetWeek(ctx context.Context, startDate string) (WeeklyPlan, error) {
	week := emptyWeek(startDate)

	rows, err := r.queries.GetWeekRows(ctx, startDate)
	if err != nil {
		return WeeklyPlan{}, fmt.Errorf("failed to load week %s: %w", startDate, err)
	}

	for _, row := range rows {
		if !row.MealType.Valid || !row.ID.Valid {
			continue // day exists but the slot is unscheduled
		}
		day, err := weekdayOf(row.Date)
		if err != nil {
			return WeeklyPlan{}, err
		}
		mealType, err := recipe.ParseMealType(row.MealType.String)
		if err != nil {
			return WeeklyPlan{}, fmt.Errorf("day %s: %w", row.Date, err)
		}
		instanceType, err := recipe.ParseMealType(row.Type.String)
		if err != nil {
			return WeeklyPlan{}, fmt.Errorf("meal %s: %w", row.ID.String, err)
		}
		week.Days[day][mealType] = Meal{
			ID:         row.ID.String,
			Name:       row.Name.String,
			Type:       instanceType,
			RecipeID:   row.RecipeID.String,
			Notes:      row.Notes.String,
			IsMealPrep: row.IsMealPrep.Valid && row.IsMealPrep.Int64 != 0,
		}
	}
	return week, nil
}

// CreateMealParams describes a meal instance to place on a calendar.
type CreateMealParams struct {
	Name       string
	Type       recipe.MealType
	RecipeID   string
	Notes      string
	IsMealPrep bool
}

// CreateMeal inserts a meal instance with a fresh UUID and returns it.
func (r *Repository) CreateMeal(ctx context.Context, p CreateMealParams) (Meal, error) {
	m := Meal{
		ID:         uuid.NewString(),
		Name:       p.Name,
		Type:       p.Type,
		RecipeID:   p.RecipeID,
		Notes:      p.Notes,
		IsMealPrep: p.IsMealPrep,
	}
	err := r.queries.InsertMeal(ctx, plandb.InsertMealParams{
		ID:         m.ID,
		Name:       m.Name,
		Type:       string(m.Type),
		RecipeID:   toNullString(m.RecipeID),
		Notes:      toNullString(m.Notes),
		IsMealPrep: sql.NullInt64{Int64: boolToInt(m.IsMealPrep), Valid: true},
	})
	if err != nil {
		return Meal{}, database.MapError(err)
	}
	return m, nil
}

// GetMeal retrieves a meal instance by id.
func (r *Repository) GetMeal(ctx context.Context, id string) (*Meal, error) {
	row, err := r.queries.GetMealByID(ctx, id)
	if err != nil {
		return nil, database.MapError(err)
	}
	mealType, err := recipe.ParseMealType(row.Type)
	if err != nil {
		return nil, fmt.Errorf("meal %s: %w", row.ID, err)
	}
	return &Meal{
		ID:         row.ID,
		Name:       row.Name,
		Type:       mealType,
		RecipeID:   row.RecipeID.String,
		Notes:      row.Notes.String,
		IsMealPrep: row.IsMealPrep.Valid && row.IsMealPrep.Int64 != 0,
	}, nil
}

// PlaceMeal assigns a meal to the (date, mealType) slot, replacing any
// prior assignment. Last write wins; nothing is merged.
func (r *Repository) PlaceMeal(ctx context.Context, date string, mealType recipe.MealType, mealID string) error {
	err := r.queries.UpsertDayMeal(ctx, plandb.UpsertDayMealParams{
		DayDate:  date,
		MealType: string(mealType),
		MealID:   mealID,
	})
	if err != nil {
		return database.MapError(err)
	}
	return nil
}

// RemoveMeal clears the (date, mealType) slot.
func (r *Repository) RemoveMeal(ctx context.Context, date string, mealType recipe.MealType) error {
	err := r.queries.DeleteDayMeal(ctx, plandb.DeleteDayMealParams{
		DayDate:  date,
		MealType: string(mealType),
	})
	if err != nil {
		return fmt.Errorf("failed to clear slot %s/%s: %w", date, mealType, err)
	}
	return nil
}

// CountMeals returns the number of meal instances.
func (r *Repository) CountMeals(ctx context.Context) (int, error) {
	n, err := r.queries.CountMeals(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count meals: %w", err)
	}
	return int(n), nil
}

// ProjectRef computes the denormalized recipe-id projection for one week.
func (r *Repository) ProjectRef(ctx context.Context, startDate string) (PlanRef, error) {
	week, err := r.GetWeek(ctx, startDate)
	if err != nil {
		return PlanRef{}, err
	}
	ref := EmptyRef(startDate)
	for day, slots := range week.Days {
		for mealType, meal := range slots {
			ref.Days[day][mealType] = meal.RecipeID
		}
	}
	return ref, nil
}

// LogSnapshot appends the current state of a week to the plan log.
// Log rows are never mutated or deleted.
func (r *Repository) LogSnapshot(ctx context.Context, startDate string) (string, error) {
	week, err := r.GetWeek(ctx, startDate)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(week)
	if err != nil {
		return "", fmt.Errorf("failed to marshal week snapshot: %w", err)
	}

	id := uuid.NewString()
	err = r.queries.InsertPlanLog(ctx, plandb.InsertPlanLogParams{
		ID:            id,
		WeekStartDate: startDate,
		CreatedAt:     time.Now().UTC(),
		SnapshotJson:  string(raw),
	})
	if err != nil {
		return "", fmt.Errorf("failed to append plan snapshot: %w", err)
	}
	return id, nil
}

// Snapshots lists the logged snapshots of a week, oldest first.
func (r *Repository) Snapshots(ctx context.Context, startDate string) ([]Snapshot, error) {
	rows, err := r.queries.ListPlanLog(ctx, startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan snapshots: %w", err)
	}
	out := make([]Snapshot, 0, len(rows))
	for _, row := range rows {
		var week WeeklyPlan
		if err := json.Unmarshal([]byte(row.SnapshotJson), &week); err != nil {
			return nil, fmt.Errorf("snapshot %s has malformed payload: %w", row.ID, err)
		}
		out = append(out, Snapshot{
			ID:            row.ID,
			WeekStartDate: row.WeekStartDate,
			CreatedAt:     row.CreatedAt,
			Plan:          week,
		})
	}
	return out, nil
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
