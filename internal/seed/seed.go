package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"mealplanner/internal/recipe"
)

// DemoWeekStart is the fixed demo week populated on a fresh install. The
// content is intentional demo data, not development scaffolding; it gives a
// new install a browsable recipe library and a filled calendar.
const DemoWeekStart = "2025-08-18"

var demoDates = []string{
	"2025-08-18", // Monday
	"2025-08-19",
	"2025-08-20",
	"2025-08-21",
	"2025-08-22",
	"2025-08-23",
	"2025-08-24",
}

type seedIngredient struct {
	id      string
	name    string
	section string
}

var ingredientCatalog = []seedIngredient{
	{"ing_banana", "Banana", "Produce"},
	{"ing_proteinbar", "Protein bar", "Snacks"},
	{"ing_turkey", "Lean ground turkey", "Meat"},
	{"ing_greens", "Mixed greens", "Produce"},
	{"ing_corn", "Corn", "Canned"},
	{"ing_blackbeans", "Black beans", "Canned"},
	{"ing_beef", "Beef", "Meat"},
	{"ing_sweetpotato", "Sweet potato", "Produce"},
	{"ing_onion", "Onion", "Produce"},
	{"ing_bellpepper", "Bell pepper", "Produce"},
	{"ing_garlic", "Garlic", "Produce"},
	{"ing_kidneybeans", "Kidney beans", "Canned"},
	{"ing_cornbreadmix", "Cornbread mix", "Bakery"},
	{"ing_cheese", "Cheese (shredded)", "Dairy"},
	{"ing_tortilla", "Whole wheat tortilla", "Bakery"},
	{"ing_chicken", "Chicken breast", "Meat"},
	{"ing_parmesan", "Parmesan", "Dairy"},
	{"ing_romaine", "Romaine", "Produce"},
	{"ing_caesardress", "Caesar dressing", "Condiments"},
	{"ing_bread", "Bread", "Bakery"},
	{"ing_egg", "Eggs", "Dairy"},
	{"ing_bacon", "Bacon", "Meat"},
	{"ing_potato", "Potato", "Produce"},
	{"ing_bluecheese", "Blue cheese", "Dairy"},
	{"ing_mixedgreens", "Salad greens", "Produce"},
	{"ing_nuts", "Walnuts/Pecans", "Bulk"},
	{"ing_avocado", "Avocado", "Produce"},
	{"ing_berries", "Berries", "Produce"},
	{"ing_oats", "Rolled oats", "Grains"},
	{"ing_milk", "Milk", "Dairy"},
	{"ing_basil", "Basil", "Produce"},
	{"ing_mozz", "Mozzarella", "Dairy"},
	{"ing_ciabatta", "Ciabatta", "Bakery"},
	{"ing_steak", "Steak", "Meat"},
	{"ing_greenbeans", "Green beans", "Produce"},
	{"ing_pulledpork", "Pulled pork", "Meat"},
	{"ing_buns", "Buns", "Bakery"},
	{"ing_cabbage", "Cabbage", "Produce"},
	{"ing_chicken_thigh", "Chicken thighs", "Meat"},
	{"ing_frozenpeas", "Frozen peas", "Frozen"},
	{"ing_piecrust", "Pie crust", "Frozen"},
	{"ing_yogurt", "Greek yogurt", "Dairy"},
	{"ing_honey", "Honey", "Condiments"},
}

type seedQuantity struct {
	ingredientID string
	quantity     float64
	unit         string
}

type seedMeal struct {
	date         string
	mealType     recipe.MealType
	name         string
	instructions []string
	ingredients  []seedQuantity
}

var demoWeek = []seedMeal{
	// Monday
	{demoDates[0], recipe.Breakfast, "Greek Yogurt with Honey & Berries",
		[]string{"Spoon yogurt into bowl. Top with berries. Drizzle honey."},
		[]seedQuantity{{"ing_yogurt", 1, "cup"}, {"ing_berries", 0.5, "cup"}, {"ing_honey", 1, "tbsp"}}},
	{demoDates[0], recipe.Lunch, "Turkey Taco Salad",
		[]string{"Brown turkey with taco seasoning. Combine greens, corn, beans. Top with turkey."},
		[]seedQuantity{{"ing_turkey", 6, "oz"}, {"ing_greens", 3, "cups"}, {"ing_corn", 0.5, "cup"}, {"ing_blackbeans", 0.5, "cup"}}},
	{demoDates[0], recipe.Dinner, "Beef & Sweet Potato Chili (with beans) + Cornbread + Cheese",
		[]string{"Sauté onion/pepper/garlic. Brown beef. Add beans, sweet potato, simmer. Bake cornbread."},
		[]seedQuantity{{"ing_beef", 16, "oz"}, {"ing_onion", 1, "unit"}, {"ing_bellpepper", 1, "unit"}, {"ing_garlic", 2, "clove"}, {"ing_kidneybeans", 1, "can"}, {"ing_blackbeans", 1, "can"}, {"ing_sweetpotato", 1, "unit"}, {"ing_cornbreadmix", 1, "box"}, {"ing_cheese", 1, "cup"}}},
	// Tuesday
	{demoDates[1], recipe.Breakfast, "Overnight Oats with Berries & Honey",
		[]string{"Mix oats with milk; refrigerate. Top with berries & honey."},
		[]seedQuantity{{"ing_oats", 0.5, "cup"}, {"ing_milk", 1, "cup"}, {"ing_berries", 0.5, "cup"}, {"ing_honey", 1, "tbsp"}}},
	{demoDates[1], recipe.Lunch, "Beef & Sweet Potato Bowl (with broccoli)",
		[]string{"Roast sweet potatoes. Cook beef. Assemble with veg."},
		[]seedQuantity{{"ing_beef", 8, "oz"}, {"ing_sweetpotato", 1, "unit"}}},
	{demoDates[1], recipe.Dinner, "Pasta with Meatballs + Garlic Bread",
		[]string{"Bake meatballs. Boil pasta. Toast garlic bread."},
		[]seedQuantity{{"ing_beef", 16, "oz"}, {"ing_bread", 1, "loaf"}, {"ing_parmesan", 0.5, "cup"}}},
	// Wednesday
	{demoDates[2], recipe.Breakfast, "Peanut Butter & Banana Toast",
		[]string{"Toast bread. Add peanut butter. Top with banana."},
		[]seedQuantity{{"ing_bread", 2, "slices"}, {"ing_banana", 1, "unit"}}},
	{demoDates[2], recipe.Lunch, "Southwest Chicken Wrap",
		[]string{"Grill chicken. Fill tortilla with greens, corn, beans, chicken."},
		[]seedQuantity{{"ing_chicken", 6, "oz"}, {"ing_tortilla", 1, "unit"}, {"ing_greens", 2, "cups"}, {"ing_corn", 0.5, "cup"}, {"ing_blackbeans", 0.5, "cup"}}},
	{demoDates[2], recipe.Dinner, "Stuffed Chicken Breast (spinach & cheese) + Roasted Carrots & Green Beans",
		[]string{"Stuff chicken; bake. Roast carrots & green beans."},
		[]seedQuantity{{"ing_chicken", 8, "oz"}, {"ing_cheese", 0.5, "cup"}, {"ing_greenbeans", 2, "cups"}}},
	// Thursday
	{demoDates[3], recipe.Breakfast, "Protein Shake + Peanut Butter + Apple",
		[]string{"Shake protein with milk/water. Spoon PB. Eat apple."},
		[]seedQuantity{{"ing_milk", 1, "cup"}}},
	{demoDates[3], recipe.Lunch, "Grilled Chicken Caesar Salad",
		[]string{"Grill chicken; toss romaine with dressing & Parmesan; top with chicken."},
		[]seedQuantity{{"ing_chicken", 6, "oz"}, {"ing_romaine", 4, "cups"}, {"ing_caesardress", 0.25, "cup"}, {"ing_parmesan", 0.25, "cup"}}},
	{demoDates[3], recipe.Dinner, "Pasta with Meatballs + Garlic Bread (repeat)",
		[]string{"Reheat or make fresh."},
		[]seedQuantity{{"ing_beef", 16, "oz"}, {"ing_bread", 1, "loaf"}, {"ing_parmesan", 0.5, "cup"}}},
	// Friday
	{demoDates[4], recipe.Breakfast, "Eggs, Hashbrowns, Bacon",
		[]string{"Cook bacon. Cook hashbrowns. Fry/scramble eggs."},
		[]seedQuantity{{"ing_bacon", 4, "slices"}, {"ing_potato", 2, "unit"}, {"ing_egg", 3, "unit"}}},
	{demoDates[4], recipe.Lunch, "Blue Cheese–Loaded Steak Salad",
		[]string{"Grill steak. Toss greens with nuts, avocado, blue cheese."},
		[]seedQuantity{{"ing_steak", 8, "oz"}, {"ing_mixedgreens", 3, "cups"}, {"ing_bluecheese", 0.75, "cup"}, {"ing_nuts", 0.25, "cup"}, {"ing_avocado", 1, "unit"}}},
	{demoDates[4], recipe.Dinner, "Spaghetti Carbonara",
		[]string{"Cook pasta. Render pancetta/bacon. Toss with eggs & Parmesan off heat."},
		[]seedQuantity{{"ing_parmesan", 0.5, "cup"}, {"ing_bacon", 6, "slices"}}},
	// Saturday
	{demoDates[5], recipe.Breakfast, "Overnight Oats with Berries & Honey",
		[]string{"Mix oats with milk; refrigerate. Top with berries & honey."},
		[]seedQuantity{{"ing_oats", 0.5, "cup"}, {"ing_milk", 1, "cup"}, {"ing_berries", 1, "cup"}}},
	{demoDates[5], recipe.Lunch, "Caprese Sandwich",
		[]string{"Layer mozzarella and basil on ciabatta. (Tomato optional.) Drizzle balsamic."},
		[]seedQuantity{{"ing_mozz", 4, "oz"}, {"ing_basil", 0.25, "cup"}, {"ing_ciabatta", 1, "loaf"}}},
	{demoDates[5], recipe.Dinner, "Grilled Steak + Garlic Mash + Green Beans",
		[]string{"Grill steak. Make mashed potatoes with garlic. Steam green beans."},
		[]seedQuantity{{"ing_steak", 10, "oz"}, {"ing_potato", 3, "unit"}, {"ing_garlic", 3, "clove"}, {"ing_greenbeans", 2, "cups"}}},
	// Sunday
	{demoDates[6], recipe.Breakfast, "French Toast with Berries & Maple",
		[]string{"Dip bread in egg/milk mixture and fry. Top with berries & syrup."},
		[]seedQuantity{{"ing_bread", 2, "slices"}, {"ing_egg", 2, "unit"}, {"ing_berries", 1, "cup"}}},
	{demoDates[6], recipe.Lunch, "Pulled Pork Sandwich with Coleslaw",
		[]string{"Warm pulled pork. Assemble on buns with slaw."},
		[]seedQuantity{{"ing_pulledpork", 8, "oz"}, {"ing_buns", 2, "unit"}, {"ing_cabbage", 1, "unit"}}},
	{demoDates[6], recipe.Dinner, "Chicken Pot Pie",
		[]string{"Cook filling with chicken, carrots, peas; bake with pie crust."},
		[]seedQuantity{{"ing_chicken_thigh", 16, "oz"}, {"ing_potato", 1, "unit"}, {"ing_frozenpeas", 1, "cup"}, {"ing_piecrust", 1, "unit"}}},
}

// SeedIfEmpty populates the ingredient catalog and the demo week, but only
// when both the recipe and meal tables are empty. The whole load runs in a
// single transaction; a partial seed is not a supported state, so any
// failure aborts the load and should be treated as a fatal startup error.
func SeedIfEmpty(ctx context.Context, db *sql.DB) error {
	var recipes, meals int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&recipes); err != nil {
		return fmt.Errorf("failed to count recipes: %w", err)
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM meals").Scan(&meals); err != nil {
		return fmt.Errorf("failed to count meals: %w", err)
	}
	if recipes > 0 || meals > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ing := range ingredientCatalog {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO ingredients (id, name, store_section) VALUES (?, ?, ?)",
			ing.id, ing.name, ing.section)
		if err != nil {
			return fmt.Errorf("failed to seed ingredient %s: %w", ing.id, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO weekly_meal_plans (start_date) VALUES (?)", DemoWeekStart); err != nil {
		return fmt.Errorf("failed to seed demo week: %w", err)
	}
	for _, d := range demoDates {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO day_plans (date, week_start_date) VALUES (?, ?)", d, DemoWeekStart); err != nil {
			return fmt.Errorf("failed to seed day %s: %w", d, err)
		}
	}

	for _, m := range demoWeek {
		recipeID, err := seedRecipe(ctx, tx, m)
		if err != nil {
			return err
		}

		mealID := uuid.NewString()
		_, err = tx.ExecContext(ctx,
			"INSERT INTO meals (id, name, type, recipe_id) VALUES (?, ?, ?, ?)",
			mealID, m.name, string(m.mealType), recipeID)
		if err != nil {
			return fmt.Errorf("failed to seed meal %q: %w", m.name, err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO day_meals (day_date, meal_type, meal_id) VALUES (?, ?, ?)",
			m.date, string(m.mealType), mealID)
		if err != nil {
			return fmt.Errorf("failed to place seed meal %q: %w", m.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

// seedRecipe inserts the master recipe unless a same-named one already
// exists in this seed run (the demo week repeats a breakfast), and upserts
// its ingredient links.
func seedRecipe(ctx context.Context, tx *sql.Tx, m seedMeal) (string, error) {
	var recipeID string
	err := tx.QueryRowContext(ctx, "SELECT id FROM recipes WHERE name = ?", m.name).Scan(&recipeID)
	if err == sql.ErrNoRows {
		recipeID = recipe.GenerateID(m.mealType)
		instructions, merr := marshalSteps(m.instructions)
		if merr != nil {
			return "", merr
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO recipes (id, name, meal_type, instructions, image_url) VALUES (?, ?, ?, ?, ?)",
			recipeID, m.name, string(m.mealType), instructions, recipe.PlaceholderImageURL)
		if err != nil {
			return "", fmt.Errorf("failed to seed recipe %q: %w", m.name, err)
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to look up seed recipe %q: %w", m.name, err)
	}

	for _, iq := range m.ingredients {
		_, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit) VALUES (?, ?, ?, ?)",
			recipeID, iq.ingredientID, iq.quantity, iq.unit)
		if err != nil {
			return "", fmt.Errorf("failed to link seed ingredient %s: %w", iq.ingredientID, err)
		}
	}
	return recipeID, nil
}

func marshalSteps(steps []string) (string, error) {
	raw, err := json.Marshal(steps)
	if err != nil {
		return "", fmt.Errorf("failed to marshal instructions: %w", err)
	}
	return string(raw), nil
}
