package shopping

import "time"

// Item is one aggregated line of a shopping list: all placed meals of the
// week needing the same ingredient in the same unit collapse into one row.
type Item struct {
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	StoreSection string  `json:"store_section,omitempty"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

// List is a persisted shopping list for one week.
type List struct {
	ID            int64     `json:"id"`
	WeekStartDate string    `json:"week_start_date"`
	Items         []Item    `json:"items"`
	CreatedAt     time.Time `json:"created_at"`
}
