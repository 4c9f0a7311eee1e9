package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"mealplanner/internal/app"
	"mealplanner/internal/config"
	"mealplanner/internal/metrics"
	"mealplanner/internal/plan"
	"mealplanner/internal/recipe"
	"mealplanner/internal/snapshot"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Restore replaces the database file from the stored blob, so it has to
	// run before the store is opened (opening would flush over the blob).
	if len(os.Args) >= 3 && os.Args[1] == "snapshot" && os.Args[2] == "restore" {
		runRestore(cfg)
		return
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer application.Close()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		runSeed(ctx, application)
	case "recipes":
		runRecipes(ctx, application, os.Args[2:])
	case "ingredients":
		runIngredients(ctx, application, os.Args[2:])
	case "plan":
		runPlan(ctx, application, os.Args[2:])
	case "shopping":
		runShopping(ctx, application, os.Args[2:])
	case "snapshot":
		runSnapshot(ctx, application, os.Args[2:])
	case "metrics":
		runMetrics(ctx, application, cfg, os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// runSeed reports the seeded state. The demo load itself runs inside
// app.Open whenever the store is empty, so this is a verification step.
func runSeed(ctx context.Context, a *app.App) {
	recipes, err := a.Recipes.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count recipes: %v", err)
	}
	ingredients, err := a.Ingredients.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count ingredients: %v", err)
	}
	meals, err := a.Plans.CountMeals(ctx)
	if err != nil {
		log.Fatalf("Failed to count meals: %v", err)
	}
	fmt.Printf("Store contains %d recipes, %d ingredients, %d placed meals.\n", recipes, ingredients, meals)
}

func runRestore(cfg *config.Config) {
	store, err := snapshot.NewFilesystem(cfg.SnapshotDir)
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}
	if err := snapshot.Restore(store, snapshot.DefaultKey, cfg.DBPath); err != nil {
		log.Fatalf("Failed to restore snapshot: %v", err)
	}
	fmt.Println("Database restored from snapshot.")
}

func runRecipes(ctx context.Context, a *app.App, args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: mealplanner recipes <list|search|add>")
	}

	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("recipes list", flag.ExitOnError)
		sortMode := listCmd.String("sort", "name_asc", "Sort order: name_asc, name_desc or recent_added")
		listCmd.Parse(args[1:])

		recipes, err := a.Recipes.List(ctx, recipe.Sort(*sortMode))
		if err != nil {
			log.Fatalf("Failed to list recipes: %v", err)
		}
		printRecipes(recipes)
	case "search":
		if len(args) < 2 {
			log.Fatal("Usage: mealplanner recipes search <substring>")
		}
		recipes, err := a.Recipes.SearchByName(ctx, args[1])
		if err != nil {
			log.Fatalf("Failed to search recipes: %v", err)
		}
		printRecipes(recipes)
	case "add":
		addCmd := flag.NewFlagSet("recipes add", flag.ExitOnError)
		name := addCmd.String("name", "", "Recipe name (required)")
		mealType := addCmd.String("type", "Dinner", "Meal type: Breakfast, Lunch, Dinner, Dessert or Snack")
		prepTime := addCmd.Int("prep", 0, "Preparation time in minutes")
		notes := addCmd.String("notes", "", "Free-form notes")
		steps := addCmd.String("steps", "", "Semicolon-separated instruction steps")
		addCmd.Parse(args[1:])

		if *name == "" {
			log.Fatal("recipes add requires -name")
		}
		mt, err := recipe.ParseMealType(*mealType)
		if err != nil {
			log.Fatalf("Invalid meal type: %v", err)
		}

		var instructions []string
		if *steps != "" {
			for _, s := range strings.Split(*steps, ";") {
				if s = strings.TrimSpace(s); s != "" {
					instructions = append(instructions, s)
				}
			}
		}

		var id string
		err = a.Metrics.Time(ctx, "recipe.add", func() error {
			var err error
			id, err = a.Recipes.Add(ctx, recipe.AddParams{
				Name:            *name,
				MealType:        mt,
				Instructions:    instructions,
				PrepTimeMinutes: *prepTime,
				Notes:           *notes,
			})
			return err
		})
		if err != nil {
			log.Fatalf("Failed to add recipe: %v", err)
		}
		fmt.Printf("Added recipe %s\n", id)
	default:
		log.Fatalf("Unknown recipes subcommand: %s", args[0])
	}
}

func runIngredients(ctx context.Context, a *app.App, args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: mealplanner ingredients <list|add>")
	}

	switch args[0] {
	case "list":
		items, err := a.Ingredients.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list ingredients: %v", err)
		}
		for _, i := range items {
			fmt.Printf("%-8s %-30s %s\n", i.ID, i.Name, i.StoreSection)
		}
	case "add":
		addCmd := flag.NewFlagSet("ingredients add", flag.ExitOnError)
		name := addCmd.String("name", "", "Ingredient name (required)")
		section := addCmd.String("section", "", "Store section, e.g. Produce")
		atWork := addCmd.Bool("at-work", false, "Available at the workplace")
		addCmd.Parse(args[1:])

		if *name == "" {
			log.Fatal("ingredients add requires -name")
		}
		id, err := a.Ingredients.Add(ctx, *name, *section, *atWork)
		if err != nil {
			log.Fatalf("Failed to add ingredient: %v", err)
		}
		fmt.Printf("Added ingredient %s\n", id)
	default:
		log.Fatalf("Unknown ingredients subcommand: %s", args[0])
	}
}

func runPlan(ctx context.Context, a *app.App, args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: mealplanner plan <show|place|remove|log>")
	}

	switch args[0] {
	case "show":
		showCmd := flag.NewFlagSet("plan show", flag.ExitOnError)
		week := showCmd.String("week", "", "Week start date, YYYY-MM-DD (required)")
		showCmd.Parse(args[1:])
		if *week == "" {
			log.Fatal("plan show requires -week")
		}

		weekly, err := a.Plans.GetWeek(ctx, *week)
		if err != nil {
			log.Fatalf("Failed to load week: %v", err)
		}
		printWeek(weekly)
	case "place":
		placeCmd := flag.NewFlagSet("plan place", flag.ExitOnError)
		date := placeCmd.String("date", "", "Day to schedule, YYYY-MM-DD (required)")
		mealType := placeCmd.String("type", "", "Meal slot: Breakfast, Lunch, Dinner, Dessert or Snack (required)")
		name := placeCmd.String("name", "", "Meal name (required)")
		recipeID := placeCmd.String("recipe", "", "Recipe id to link")
		placeCmd.Parse(args[1:])

		if *date == "" || *mealType == "" || *name == "" {
			log.Fatal("plan place requires -date, -type and -name")
		}
		mt, err := recipe.ParseMealType(*mealType)
		if err != nil {
			log.Fatalf("Invalid meal type: %v", err)
		}

		weekStart, err := plan.WeekStartOf(*date)
		if err != nil {
			log.Fatalf("Invalid date: %v", err)
		}
		if err := a.Plans.EnsureWeek(ctx, weekStart); err != nil {
			log.Fatalf("Failed to prepare week: %v", err)
		}

		meal, err := a.Plans.CreateMeal(ctx, plan.CreateMealParams{
			Name:     *name,
			Type:     mt,
			RecipeID: *recipeID,
		})
		if err != nil {
			log.Fatalf("Failed to create meal: %v", err)
		}
		if err := a.Plans.PlaceMeal(ctx, *date, mt, meal.ID); err != nil {
			log.Fatalf("Failed to place meal: %v", err)
		}
		fmt.Printf("Placed %q on %s (%s)\n", meal.Name, *date, mt)
	case "remove":
		removeCmd := flag.NewFlagSet("plan remove", flag.ExitOnError)
		date := removeCmd.String("date", "", "Day to clear, YYYY-MM-DD (required)")
		mealType := removeCmd.String("type", "", "Meal slot to clear (required)")
		removeCmd.Parse(args[1:])

		if *date == "" || *mealType == "" {
			log.Fatal("plan remove requires -date and -type")
		}
		mt, err := recipe.ParseMealType(*mealType)
		if err != nil {
			log.Fatalf("Invalid meal type: %v", err)
		}
		if err := a.Plans.RemoveMeal(ctx, *date, mt); err != nil {
			log.Fatalf("Failed to remove meal: %v", err)
		}
		fmt.Printf("Cleared %s on %s\n", mt, *date)
	case "log":
		logCmd := flag.NewFlagSet("plan log", flag.ExitOnError)
		week := logCmd.String("week", "", "Week start date, YYYY-MM-DD (required)")
		logCmd.Parse(args[1:])
		if *week == "" {
			log.Fatal("plan log requires -week")
		}

		id, err := a.Plans.LogSnapshot(ctx, *week)
		if err != nil {
			log.Fatalf("Failed to log plan snapshot: %v", err)
		}
		fmt.Printf("Logged plan snapshot %s for week %s\n", id, *week)
	default:
		log.Fatalf("Unknown plan subcommand: %s", args[0])
	}
}

func runShopping(ctx context.Context, a *app.App, args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: mealplanner shopping <build|show>")
	}

	switch args[0] {
	case "build":
		buildCmd := flag.NewFlagSet("shopping build", flag.ExitOnError)
		week := buildCmd.String("week", "", "Week start date, YYYY-MM-DD (required)")
		save := buildCmd.Bool("save", false, "Persist the built list")
		buildCmd.Parse(args[1:])
		if *week == "" {
			log.Fatal("shopping build requires -week")
		}

		items, err := a.Shopping.BuildList(ctx, *week)
		if err != nil {
			log.Fatalf("Failed to build shopping list: %v", err)
		}
		section := ""
		for _, item := range items {
			if item.StoreSection != section {
				section = item.StoreSection
				fmt.Printf("\n== %s ==\n", section)
			}
			fmt.Printf("  %g %s %s\n", item.Quantity, item.Unit, item.Name)
		}
		if *save {
			id, err := a.Shopping.Save(ctx, *week, items)
			if err != nil {
				log.Fatalf("Failed to save shopping list: %v", err)
			}
			fmt.Printf("\nSaved shopping list %d\n", id)
		}
	case "show":
		showCmd := flag.NewFlagSet("shopping show", flag.ExitOnError)
		week := showCmd.String("week", "", "Week start date, YYYY-MM-DD (required)")
		showCmd.Parse(args[1:])
		if *week == "" {
			log.Fatal("shopping show requires -week")
		}

		list, err := a.Shopping.GetByWeek(ctx, *week)
		if err != nil {
			log.Fatalf("Failed to load shopping list: %v", err)
		}
		if list == nil {
			fmt.Printf("No saved shopping list for week %s\n", *week)
			return
		}
		fmt.Printf("Shopping list %d for week %s (%s)\n", list.ID, list.WeekStartDate, list.CreatedAt.Format("2006-01-02 15:04"))
		for _, item := range list.Items {
			fmt.Printf("  %g %s %s\n", item.Quantity, item.Unit, item.Name)
		}
	default:
		log.Fatalf("Unknown shopping subcommand: %s", args[0])
	}
}

func runSnapshot(ctx context.Context, a *app.App, args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: mealplanner snapshot <save|restore>")
	}

	switch args[0] {
	case "save":
		if err := a.Metrics.Time(ctx, "snapshot.persist", func() error {
			return a.Snapshots.Persist(ctx)
		}); err != nil {
			log.Fatalf("Failed to persist snapshot: %v", err)
		}
		fmt.Println("Snapshot saved.")
	case "restore":
		// Handled before the store opens; reaching here means the early
		// dispatch in main was bypassed.
		log.Fatal("snapshot restore must run on a closed store")
	default:
		log.Fatalf("Unknown snapshot subcommand: %s", args[0])
	}
}

func runMetrics(ctx context.Context, a *app.App, cfg *config.Config, args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: mealplanner metrics <usage|cleanup|health>")
	}

	switch args[0] {
	case "usage":
		usageCmd := flag.NewFlagSet("metrics usage", flag.ExitOnError)
		days := usageCmd.Int("days", 7, "Show usage for the last N days")
		usageCmd.Parse(args[1:])

		rows, err := a.Metrics.GetDailyUsage(ctx, *days)
		if err != nil {
			log.Fatalf("Failed to load usage: %v", err)
		}
		for _, u := range rows {
			fmt.Printf("%-12s %-20s count=%-5d total=%dms avg=%.1fms\n", u.Date, u.Op, u.Count, u.TotalMS, u.AverageMS)
		}
	case "cleanup":
		cleanupCmd := flag.NewFlagSet("metrics cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(args[1:])

		if err := a.Metrics.Cleanup(ctx, *days); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Printf("Removed metric records older than %d days.\n", *days)
	case "health":
		h := metrics.GetSysHealth(cfg.SnapshotDir)
		fmt.Printf("Alloc: %d MB  Sys: %d MB  GC runs: %d  Goroutines: %d\n", h.AllocMB, h.SysMB, h.NumGC, h.Goroutines)
		fmt.Printf("Snapshot dir size: %s\n", h.DataDiskSize)
	default:
		log.Fatalf("Unknown metrics subcommand: %s", args[0])
	}
}

func printRecipes(recipes []recipe.Recipe) {
	for _, r := range recipes {
		fmt.Printf("%-8s %-10s %-35s", r.ID, r.MealType, r.Name)
		if r.PrepTimeMinutes > 0 {
			fmt.Printf(" %dmin", r.PrepTimeMinutes)
		}
		fmt.Println()
	}
}

func printWeek(w plan.WeeklyPlan) {
	fmt.Printf("Week of %s\n", w.StartDate)
	for _, day := range plan.WeekDays {
		fmt.Printf("\n%s\n", day)
		dp := w.Days[day]
		if len(dp) == 0 {
			fmt.Println("  (nothing scheduled)")
			continue
		}
		for _, mt := range []recipe.MealType{recipe.Breakfast, recipe.Lunch, recipe.Dinner, recipe.Dessert, recipe.Snack} {
			if meal, ok := dp[mt]; ok {
				fmt.Printf("  %-10s %s\n", mt, meal.Name)
			}
		}
	}
}

func printUsage() {
	fmt.Println("Usage: mealplanner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed                         Report the seeded store contents")
	fmt.Println("  recipes list|search|add      Manage the recipe library")
	fmt.Println("  ingredients list|add         Manage the ingredient catalog")
	fmt.Println("  plan show|place|remove|log   Work with the weekly plan grid")
	fmt.Println("  shopping build|show          Build or show a weekly shopping list")
	fmt.Println("  snapshot save|restore        Persist or restore a database snapshot")
	fmt.Println("  metrics usage|cleanup|health Inspect store metrics")
}
