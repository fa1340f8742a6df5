// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Recipe is the aggregate root of the catalog. It exclusively owns its
// ingredient list and its ordered instruction steps: both collections are
// persisted and replaced as a whole with the parent row.
type Recipe struct {
	ID              int64        // Database identity. Zero means the recipe has not been persisted yet.
	Title           string       // Display title, required.
	Description     string       // Free-text description, required.
	PreparationTime int          // Preparation time in minutes, never negative.
	CookingTime     int          // Cooking time in minutes, never negative.
	Servings        int          // Number of servings, always positive.
	Difficulty      string       // Difficulty label (e.g. "Easy"), required.
	Category        string       // Category label (e.g. "Dessert"), required.
	OwnerUserID     *int64       // Owning user, nil when no owner was recorded.
	Visibility      Visibility   // PUBLIC or PRIVATE. Blank behaves as PUBLIC on read, PRIVATE on save.
	Ingredients     []Ingredient // Owned ingredient list, stored order.
	Instructions    []string     // Owned instruction steps; position defines the 1-based step number.
}

// Ingredient is a child value of a Recipe. Its identity is scoped to the
// parent recipe and is reassigned whenever the parent is re-saved.
type Ingredient struct {
	ID       int64
	Name     string  // Required.
	Quantity float64 // Non-negative; zero means "unspecified".
	Unit     string  // Optional free text, e.g. "grams".
	Notes    string  // Optional free text, e.g. "chopped".
}
