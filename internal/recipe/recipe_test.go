package recipe

import (
	"testing"
)

func TestParseMealType(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for _, raw := range []string{"Breakfast", "Lunch", "Dinner", "Dessert", "Snack"} {
			mt, err := ParseMealType(raw)
			if err != nil {
				t.Errorf("Expected %q to parse, got %v", raw, err)
			}
			if string(mt) != raw {
				t.Errorf("Expected %q, got %q", raw, mt)
			}
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, raw := range []string{"", "dinner", "Brunch", "DINNER"} {
			if _, err := ParseMealType(raw); err == nil {
				t.Errorf("Expected %q to be rejected", raw)
			}
		}
	})
}
