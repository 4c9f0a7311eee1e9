package plan

import (
	"fmt"
	"time"

	"mealplanner/internal/recipe"
)

// DayOfWeek names a day in a weekly plan.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// WeekDays lists the days in calendar order starting Monday.
var WeekDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Meal is a recipe instance placed on a calendar. Name caches the recipe
// name at placement time for display.
type Meal struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       recipe.MealType `json:"type"`
	RecipeID   string          `json:"recipe_id,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	IsMealPrep bool            `json:"is_meal_prep,omitempty"`
}

// DayPlan holds at most one meal per meal type.
type DayPlan map[recipe.MealType]Meal

// WeeklyPlan is the full day x meal-type grid for one week, keyed by the
// Monday of the week. All 7 days are always present; unscheduled slots are
// simply absent from the day map.
type WeeklyPlan struct {
	StartDate string                `json:"start_date"`
	Days      map[DayOfWeek]DayPlan `json:"days"`
}

// PlanRef is a denormalized read-only projection of a WeeklyPlan: each slot
// holds a recipe id directly, with no intermediate meal instance. It is
// computed from the relational data and never persisted as a second source
// of truth.
type PlanRef struct {
	StartDate string                                   `json:"start_date"`
	Days      map[DayOfWeek]map[recipe.MealType]string `json:"days"`
}

// Snapshot is one append-only historical record of a weekly plan.
type Snapshot struct {
	ID            string     `json:"id"`
	WeekStartDate string     `json:"week_start_date"`
	CreatedAt     time.Time  `json:"created_at"`
	Plan          WeeklyPlan `json:"plan"`
}

const dateLayout = "2006-01-02"

// WeekStartOf returns the Monday of the week containing the given date.
func WeekStartOf(date string) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	back := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -back).Format(dateLayout), nil
}

// weekdayOf derives the day name from the stored ISO date; the date is
// authoritative, the day name is never stored independently.
func weekdayOf(date string) (DayOfWeek, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid plan date %q: %w", date, err)
	}
	return DayOfWeek(t.Weekday().String()), nil
}

// weekDates returns the 7 ISO dates of the week beginning at startDate.
func weekDates(startDate string) ([]string, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid week start date %q: %w", startDate, err)
	}
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = start.AddDate(0, 0, i).Format(dateLayout)
	}
	return dates, nil
}

// EmptyRef returns a PlanRef with all 7 days present and no slots filled.
func EmptyRef(startDate string) PlanRef {
	days := make(map[DayOfWeek]map[recipe.MealType]string, len(WeekDays))
	for _, d := range WeekDays {
		days[d] = map[recipe.MealType]string{}
	}
	return PlanRef{StartDate: startDate, Days: days}
}

func emptyWeek(startDate string) WeeklyPlan {
	days := make(map[DayOfWeek]DayPlan, len(WeekDays))
	for _, d := range WeekDays {
		days[d] = DayPlan{}
	}
	return WeeklyPlan{StartDate: startDate, Days: days}
}
