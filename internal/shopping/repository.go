package shopping

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	shoppingdb "mealplanner/internal/shopping/db"
)

// Repository builds and persists shopping lists.
type Repository struct {
	queries *shoppingdb.Queries
	db      *sql.DB
}

// NewRepository creates a new shopping list repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: shoppingdb.New(d),
		db:      d,
	}
}

// BuildList aggregates the ingredient quantities of every meal placed in
// the given week. Identical (ingredient, unit) pairs are summed; rows come
// back grouped by store section for a sensible shopping order.
func (r *Repository) BuildList(ctx context.Context, weekStartDate string) ([]Item, error) {
	rows, err := r.queries.AggregateWeekIngredients(ctx, weekStartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate week ingredients: %w", err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			IngredientID: row.ID,
			Name:         row.Name,
			StoreSection: row.StoreSection.String,
			Quantity:     row.Quantity.Float64,
			Unit:         row.Unit.String,
		})
	}
	return items, nil
}

// Save persists a built list for the week and returns its id.
func (r *Repository) Save(ctx context.Context, weekStartDate string, items []Item) (int64, error) {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal shopping list items: %w", err)
	}

	id, err := r.queries.InsertShoppingList(ctx, shoppingdb.InsertShoppingListParams{
		WeekStartDate: weekStartDate,
		Items:         string(itemsJSON),
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert shopping list: %w", err)
	}
	return id, nil
}

// GetByWeek retrieves the most recently saved list for a week, or nil when
// none has been saved.
func (r *Repository) GetByWeek(ctx context.Context, weekStartDate string) (*List, error) {
	row, err := r.queries.GetLatestShoppingListByWeek(ctx, weekStartDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No shopping list saved for this week
		}
		return nil, fmt.Errorf("failed to get shopping list for week %s: %w", weekStartDate, err)
	}

	var items []Item
	if err := json.Unmarshal([]byte(row.Items), &items); err != nil {
		return nil, fmt.Errorf("shopping list %d has malformed items: %w", row.ID, err)
	}

	return &List{
		ID:            row.ID,
		WeekStartDate: row.WeekStartDate,
		Items:         items,
		CreatedAt:     row.CreatedAt,
	}, nil
}
