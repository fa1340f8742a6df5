// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shortQueryLimit is the query length at and below which search matches
// titles only. Longer queries fan out to descriptions, ingredient names
// and instruction steps.
const shortQueryLimit = 2

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService. It receives all dependencies as interfaces.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  params.TxManager,
		recipeRepo: params.RecipeRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveRecipe persists the recipe aggregate in a single transaction. A new
// recipe without an owner is stamped with the current user when one is known.
// Updates never re-stamp, so editing a recipe cannot transfer its ownership.
func (srv *recipeService) SaveRecipe(ctx context.Context, input *usecase.SaveRecipeInput) (*entity.Recipe, error) {
	if input == nil || input.Recipe == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "recipe is required")
	}

	recipe := input.Recipe
	if recipe.ID == 0 && recipe.OwnerUserID == nil && input.CurrentUserID != nil {
		ownerID := *input.CurrentUserID
		recipe.OwnerUserID = &ownerID
	}

	srv.log(ctx).Debug("Saving recipe", slog.Int64("recipeID", recipe.ID), slog.String("title", recipe.Title))

	var saved *entity.Recipe
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var saveErr error
		saved, saveErr = repoFactory.RecipeRepo().Save(ctx, recipe)
		if saveErr != nil {
			return errors.Wrap(saveErr, "failed to save recipe")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute recipe save transaction", slog.Int64("recipeID", recipe.ID), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to execute recipe save transaction")
	}

	srv.log(ctx).Debug("Recipe saved", slog.Int64("recipeID", saved.ID))

	return saved, nil
}

// GetRecipe loads a single recipe aggregate by its identifier.
func (srv *recipeService) GetRecipe(ctx context.Context, id int64) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe not found")
		}

		srv.log(ctx).Error("Failed to load recipe", slog.Int64("recipeID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load recipe")
	}

	return recipe, nil
}

// ListRecipes returns the recipes visible to the current user: every public
// recipe plus the user's own private ones. An anonymous caller sees only
// public recipes.
func (srv *recipeService) ListRecipes(ctx context.Context, currentUserID *int64) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindAllVisibleFor(ctx, currentUserID)
	if err != nil {
		srv.log(ctx).Error("Failed to list recipes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// SearchRecipes performs a case-insensitive substring search. Queries of one
// or two characters match titles only; longer queries also match
// descriptions, ingredient names and instruction text. A blank query falls
// back to the visibility-scoped listing.
func (srv *recipeService) SearchRecipes(ctx context.Context, query string, currentUserID *int64) ([]*entity.Recipe, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return srv.ListRecipes(ctx, currentUserID)
	}

	recipes, err := srv.recipeRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to search recipes", slog.String("query", needle), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search recipes")
	}

	titleOnly := len([]rune(needle)) <= shortQueryLimit

	var matched []*entity.Recipe
	seen := make(map[int64]struct{})
	for _, recipe := range recipes {
		if !recipeMatches(recipe, needle, titleOnly) {
			continue
		}
		if _, ok := seen[recipe.ID]; ok {
			continue
		}
		seen[recipe.ID] = struct{}{}
		matched = append(matched, recipe)
	}

	srv.log(ctx).Debug("Recipe search completed", slog.String("query", needle), slog.Int("matches", len(matched)))

	return matched, nil
}

// RecipesByCategory returns recipes whose category equals the given one,
// compared case-insensitively. A blank category falls back to the
// visibility-scoped listing.
func (srv *recipeService) RecipesByCategory(ctx context.Context, category string, currentUserID *int64) ([]*entity.Recipe, error) {
	wanted := strings.TrimSpace(category)
	if wanted == "" {
		return srv.ListRecipes(ctx, currentUserID)
	}

	recipes, err := srv.recipeRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list recipes by category", slog.String("category", wanted), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recipes by category")
	}

	var matched []*entity.Recipe
	for _, recipe := range recipes {
		if strings.EqualFold(recipe.Category, wanted) {
			matched = append(matched, recipe)
		}
	}

	return matched, nil
}

// DeleteRecipe removes the recipe and its ingredients and instructions in a
// single transaction. Deleting an unknown recipe is not an error.
func (srv *recipeService) DeleteRecipe(ctx context.Context, id int64) error {
	srv.log(ctx).Debug("Deleting recipe", slog.Int64("recipeID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if deleteErr := repoFactory.RecipeRepo().Delete(ctx, id); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to delete recipe")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute recipe delete transaction", slog.Int64("recipeID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute recipe delete transaction")
	}

	return nil
}

// recipeMatches reports whether the recipe contains the lowercased needle.
// Fields are checked in order and the first hit wins.
func recipeMatches(recipe *entity.Recipe, needle string, titleOnly bool) bool {
	if strings.Contains(strings.ToLower(recipe.Title), needle) {
		return true
	}
	if titleOnly {
		return false
	}

	if strings.Contains(strings.ToLower(recipe.Description), needle) {
		return true
	}
	for _, ingredient := range recipe.Ingredients {
		if strings.Contains(strings.ToLower(ingredient.Name), needle) {
			return true
		}
	}
	for _, step := range recipe.Instructions {
		if strings.Contains(strings.ToLower(step), needle) {
			return true
		}
	}

	return false
}
