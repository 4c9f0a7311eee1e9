package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	db "mealplanner/internal/recipe/db"

	"mealplanner/internal/database"
)

// Repository is a database-backed repository for recipes.
type Repository struct {
	queries *db.Queries
	db      *sql.DB // Direct database access for transactions and dynamic ordering
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: db.New(d),
		db:      d,
	}
}

// AddParams describes a recipe to insert. ImageURL defaults to the
// placeholder when empty; Ingredients are upserted alongside the recipe.
type AddParams struct {
	Name            string
	MealType        MealType
	Instructions    []string
	Ingredients     []IngredientQuantity
	PrepTimeMinutes int
	Notes           string
	ImageURL        string
}

// Add inserts a new recipe and its ingredient links in one transaction and
// returns the generated id. A name collision fails with ErrConstraint.
func (r *Repository) Add(ctx context.Context, p AddParams) (string, error) {
	instructions, err := json.Marshal(nonNil(p.Instructions))
	if err != nil {
		return "", fmt.Errorf("failed to marshal instructions: %w", err)
	}

	imageURL := p.ImageURL
	if imageURL == "" {
		imageURL = PlaceholderImageURL
	}

	id := GenerateID(p.MealType)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)

	err = q.InsertRecipe(ctx, db.InsertRecipeParams{
		ID:              id,
		Name:            p.Name,
		MealType:        string(p.MealType),
		Instructions:    sql.NullString{String: string(instructions), Valid: true},
		PrepTimeMinutes: toNullInt(p.PrepTimeMinutes),
		Notes:           toNullString(p.Notes),
		ImageUrl:        sql.NullString{String: imageURL, Valid: true},
	})
	if err != nil {
		return "", database.MapError(err)
	}

	for _, iq := range p.Ingredients {
		if err := upsertIngredient(ctx, q, id, iq); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit recipe insert: %w", err)
	}
	return id, nil
}

// UpdateParams carries a partial update; nil fields keep the current value.
type UpdateParams struct {
	Name            *string
	MealType        *MealType
	Instructions    []string // nil keeps the stored steps
	PrepTimeMinutes *int
	Notes           *string
	ImageURL        *string
}

// Update merges the provided fields over the current row and writes it back.
// A missing id fails with ErrNotFound before any mutation.
func (r *Repository) Update(ctx context.Context, id string, p UpdateParams) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)

	cur, err := q.GetRecipeByID(ctx, id)
	if err != nil {
		return database.MapError(err)
	}

	name := cur.Name
	if p.Name != nil {
		name = *p.Name
	}
	mealType := cur.MealType
	if p.MealType != nil {
		mealType = string(*p.MealType)
	}
	instructions := cur.Instructions
	if p.Instructions != nil {
		raw, merr := json.Marshal(p.Instructions)
		if merr != nil {
			return fmt.Errorf("failed to marshal instructions: %w", merr)
		}
		instructions = sql.NullString{String: string(raw), Valid: true}
	}
	prep := cur.PrepTimeMinutes
	if p.PrepTimeMinutes != nil {
		prep = sql.NullInt64{Int64: int64(*p.PrepTimeMinutes), Valid: true}
	}
	notes := cur.Notes
	if p.Notes != nil {
		notes = sql.NullString{String: *p.Notes, Valid: true}
	}
	imageURL := cur.ImageUrl
	if p.ImageURL != nil {
		imageURL = sql.NullString{String: *p.ImageURL, Valid: true}
	}

	err = q.UpdateRecipe(ctx, db.UpdateRecipeParams{
		Name:            name,
		MealType:        mealType,
		Instructions:    instructions,
		PrepTimeMinutes: prep,
		Notes:           notes,
		ImageUrl:        imageURL,
		ID:              id,
	})
	if err != nil {
		return database.MapError(err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recipe update: %w", err)
	}
	return nil
}

// Get retrieves a recipe by its id.
func (r *Repository) Get(ctx context.Context, id string) (*Recipe, error) {
	row, err := r.queries.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, database.MapError(err)
	}
	rec, err := fromRow(row)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes a recipe; its junction rows cascade away with it.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.queries.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// List returns the full recipe set in the requested order.
// recent_added orders by insertion sequence, most recent first.
func (r *Repository) List(ctx context.Context, sort Sort) ([]Recipe, error) {
	// sqlc cannot express a dynamic ORDER BY, so this one query stays on
	// database/sql directly.
	order := "ORDER BY name ASC"
	switch sort {
	case SortNameDesc:
		order = "ORDER BY name DESC"
	case SortRecentAdded:
		order = "ORDER BY rowid DESC"
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, meal_type, instructions, prep_time_minutes, notes, image_url FROM recipes "+order)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var row db.Recipe
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.MealType,
			&row.Instructions,
			&row.PrepTimeMinutes,
			&row.Notes,
			&row.ImageUrl,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		rec, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipe rows: %w", err)
	}
	return recipes, nil
}

// SearchByName returns recipes whose name contains the substring, always
// ordered by name ascending. An empty substring matches everything.
func (r *Repository) SearchByName(ctx context.Context, substr string) ([]Recipe, error) {
	rows, err := r.queries.SearchRecipesByName(ctx, "%"+substr+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	recipes := make([]Recipe, 0, len(rows))
	for _, row := range rows {
		rec, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, nil
}

// SetIngredients upserts the given links; an existing (recipe, ingredient)
// pair has its quantity and unit replaced, never accumulated.
func (r *Repository) SetIngredients(ctx context.Context, recipeID string, items []IngredientQuantity) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)
	for _, iq := range items {
		if err := upsertIngredient(ctx, q, recipeID, iq); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ingredient upserts: %w", err)
	}
	return nil
}

// Ingredients returns the ingredient links of a recipe.
func (r *Repository) Ingredients(ctx context.Context, recipeID string) ([]IngredientQuantity, error) {
	rows, err := r.queries.GetRecipeIngredients(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe ingredients: %w", err)
	}
	items := make([]IngredientQuantity, 0, len(rows))
	for _, row := range rows {
		items = append(items, IngredientQuantity{
			IngredientID: row.IngredientID,
			Quantity:     row.Quantity.Float64,
			Unit:         row.Unit.String,
		})
	}
	return items, nil
}

// Count returns the number of recipes.
func (r *Repository) Count(ctx context.Context) (int, error) {
	n, err := r.queries.CountRecipes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return int(n), nil
}

func upsertIngredient(ctx context.Context, q *db.Queries, recipeID string, iq IngredientQuantity) error {
	err := q.UpsertRecipeIngredient(ctx, db.UpsertRecipeIngredientParams{
		RecipeID:     recipeID,
		IngredientID: iq.IngredientID,
		Quantity:     sql.NullFloat64{Float64: iq.Quantity, Valid: true},
		Unit:         toNullString(iq.Unit),
	})
	if err != nil {
		return database.MapError(err)
	}
	return nil
}

func fromRow(row db.Recipe) (Recipe, error) {
	mealType, err := ParseMealType(row.MealType)
	if err != nil {
		return Recipe{}, fmt.Errorf("recipe %s: %w", row.ID, err)
	}

	var steps []string
	if row.Instructions.Valid && row.Instructions.String != "" {
		if err := json.Unmarshal([]byte(row.Instructions.String), &steps); err != nil {
			return Recipe{}, fmt.Errorf("recipe %s has malformed instructions: %w", row.ID, err)
		}
	}

	return Recipe{
		ID:              row.ID,
		Name:            row.Name,
		MealType:        mealType,
		Instructions:    steps,
		PrepTimeMinutes: int(row.PrepTimeMinutes.Int64),
		Notes:           row.Notes.String,
		ImageURL:        row.ImageUrl.String,
	}, nil
}

func nonNil(steps []string) []string {
	if steps == nil {
		return []string{}
	}
	return steps
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func toNullInt(n int) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(n), Valid: true}
}
