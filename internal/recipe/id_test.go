package recipe

import "testing"

func TestGenerateIDShape(t *testing.T) {
	cases := []struct {
		mealType MealType
		head     byte
	}{
		{Breakfast, '1'},
		{Lunch, '2'},
		{Dinner, '3'},
		{Dessert, '4'},
		{Snack, '5'},
	}
	for _, tc := range cases {
		id := GenerateID(tc.mealType)
		if len(id) != 6 {
			t.Errorf("%s: expected 6-digit id, got %q", tc.mealType, id)
		}
		if id[0] != tc.head {
			t.Errorf("%s: expected head '%c', got '%c'", tc.mealType, tc.head, id[0])
		}
		for _, c := range id {
			if c < '0' || c > '9' {
				t.Errorf("%s: non-digit character in id %q", tc.mealType, id)
			}
		}
	}
}

func TestGenerateIDUniqueWithinProcess(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID(Dinner)
		if seen[id] {
			t.Fatalf("Duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
