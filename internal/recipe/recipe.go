package recipe

import "fmt"

// MealType classifies a recipe by the slot it is usually eaten in.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
	Dessert   MealType = "Dessert"
	Snack     MealType = "Snack"
)

// ParseMealType validates a raw meal type string.
func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case Breakfast, Lunch, Dinner, Dessert, Snack:
		return MealType(s), nil
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

// PlaceholderImageURL is used when a recipe is added without an image.
const PlaceholderImageURL = "https://via.placeholder.com/600x400?text=Recipe+Image"

// Recipe is a master recipe list entry.
type Recipe struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	MealType        MealType `json:"meal_type"`
	Instructions    []string `json:"instructions"`
	PrepTimeMinutes int      `json:"prep_time_minutes,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
}

// IngredientQuantity links a recipe to one ingredient with an amount.
type IngredientQuantity struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

// Sort selects the ordering of a recipe listing.
type Sort string

const (
	SortNameAsc     Sort = "name_asc"
	SortNameDesc    Sort = "name_desc"
	SortRecentAdded Sort = "recent_added"
)
