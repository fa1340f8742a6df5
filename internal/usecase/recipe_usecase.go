// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"recipebox/internal/domain/entity"
)

// SaveRecipeInput carries a recipe to persist together with the optional
// current-user fact supplied by the delivery layer.
type SaveRecipeInput struct {
	Recipe *entity.Recipe

	// CurrentUserID stamps ownership onto new recipes that have none.
	// Nil means the caller is anonymous.
	CurrentUserID *int64
}

// RecipeUsecase defines the interface for recipe-related business operations.
// Listing, search and category filtering are scoped by the optional
// currentUserID: public recipes are always included, the caller's own
// private recipes only when the ID is present.
type RecipeUsecase interface {
	// SaveRecipe persists the aggregate (insert or update) inside one
	// transaction and returns it with its assigned identity.
	SaveRecipe(ctx context.Context, input *SaveRecipeInput) (*entity.Recipe, error)

	// GetRecipe loads one recipe with children fully loaded.
	GetRecipe(ctx context.Context, id int64) (*entity.Recipe, error)

	// ListRecipes returns the visibility-scoped listing.
	ListRecipes(ctx context.Context, currentUserID *int64) ([]*entity.Recipe, error)

	// SearchRecipes filters recipes by a free-text query. A blank query
	// falls back to ListRecipes.
	SearchRecipes(ctx context.Context, query string, currentUserID *int64) ([]*entity.Recipe, error)

	// RecipesByCategory filters recipes by exact, case-insensitive category.
	// A blank category falls back to ListRecipes.
	RecipesByCategory(ctx context.Context, category string, currentUserID *int64) ([]*entity.Recipe, error)

	// DeleteRecipe removes a recipe and its children inside one transaction.
	DeleteRecipe(ctx context.Context, id int64) error
}
