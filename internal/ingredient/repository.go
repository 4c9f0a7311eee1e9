package ingredient

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	ingredientdb "mealplanner/internal/ingredient/db"

	"mealplanner/internal/database"
)

// Ingredient is a catalog entry from the master ingredient list.
type Ingredient struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	StoreSection    string `json:"store_section,omitempty"`
	AvailableAtWork bool   `json:"available_at_work,omitempty"`
}

// Repository is a database-backed repository for the ingredient catalog.
type Repository struct {
	queries *ingredientdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: ingredientdb.New(d),
		db:      d,
	}
}

// Add allocates the next sequential id (I00001, I00002, ...) and inserts the
// ingredient. The counter read, counter write and row insert run in a single
// transaction so an id is never issued twice. The counter only ever increases;
// deleting a row does not free its id.
func (r *Repository) Add(ctx context.Context, name, storeSection string, availableAtWork bool) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)

	cur := 1
	v, err := q.GetCounter(ctx)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to read ingredient counter: %w", err)
	}
	if v.Valid {
		if n, perr := strconv.Atoi(v.String); perr == nil {
			cur = n
		}
	}

	id := fmt.Sprintf("I%05d", cur)

	if err := q.SetCounter(ctx, sql.NullString{String: strconv.Itoa(cur + 1), Valid: true}); err != nil {
		return "", fmt.Errorf("failed to advance ingredient counter: %w", err)
	}

	err = q.InsertIngredient(ctx, ingredientdb.InsertIngredientParams{
		ID:              id,
		Name:            name,
		StoreSection:    toNullString(storeSection),
		AvailableAtWork: sql.NullInt64{Int64: boolToInt(availableAtWork), Valid: true},
	})
	if err != nil {
		return "", database.MapError(err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit ingredient insert: %w", err)
	}
	return id, nil
}

// Get retrieves an ingredient by its id.
func (r *Repository) Get(ctx context.Context, id string) (*Ingredient, error) {
	row, err := r.queries.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, database.MapError(err)
	}
	ing := fromRow(row)
	return &ing, nil
}

// List returns the full catalog ordered by name ascending.
func (r *Repository) List(ctx context.Context) ([]Ingredient, error) {
	rows, err := r.queries.ListIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return fromRows(rows), nil
}

// SearchByName returns ingredients whose name contains the substring,
// ordered by name ascending. An empty substring matches everything.
func (r *Repository) SearchByName(ctx context.Context, substr string) ([]Ingredient, error) {
	rows, err := r.queries.SearchIngredientsByName(ctx, "%"+substr+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	return fromRows(rows), nil
}

// Count returns the number of ingredients in the catalog.
func (r *Repository) Count(ctx context.Context) (int, error) {
	n, err := r.queries.CountIngredients(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count ingredients: %w", err)
	}
	return int(n), nil
}

func fromRow(row ingredientdb.Ingredient) Ingredient {
	return Ingredient{
		ID:              row.ID,
		Name:            row.Name,
		StoreSection:    row.StoreSection.String,
		AvailableAtWork: row.AvailableAtWork.Valid && row.AvailableAtWork.Int64 != 0,
	}
}

func fromRows(rows []ingredientdb.Ingredient) []Ingredient {
	out := make([]Ingredient, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out
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
