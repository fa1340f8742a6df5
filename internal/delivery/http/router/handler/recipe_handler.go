package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"recipebox/internal/delivery/context"
	"recipebox/internal/delivery/http/response"
	"recipebox/internal/domain/entity"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IngredientRequest is one ingredient line in a recipe payload.
type IngredientRequest struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"`
	Notes    string  `json:"notes"`
}

// RecipeRequest is the payload for creating or updating a recipe.
type RecipeRequest struct {
	Title           string              `json:"title" validate:"required"`
	Description     string              `json:"description"`
	PreparationTime int                 `json:"preparation_time" validate:"gte=0"`
	CookingTime     int                 `json:"cooking_time" validate:"gte=0"`
	Servings        int                 `json:"servings" validate:"gte=0"`
	Difficulty      string              `json:"difficulty"`
	Category        string              `json:"category"`
	Visibility      string              `json:"visibility"`
	Ingredients     []IngredientRequest `json:"ingredients"`
	Instructions    []string            `json:"instructions"`
}

// RecipeHandler holds dependencies for recipe handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the recipe creation request.
func (h *RecipeHandler) Create(c echo.Context) error {
	recipe, err := h.bindRecipe(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe input")
	}

	saved, err := h.uc.SaveRecipe(c.Request().Context(), &usecase.SaveRecipeInput{
		Recipe:        recipe,
		CurrentUserID: context.GetUserIDPtr(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, saved, "Recipe created successfully")
}

// Update handles the recipe update request. The whole aggregate is replaced.
func (h *RecipeHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	recipe, err := h.bindRecipe(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe input")
	}
	recipe.ID = id

	saved, err := h.uc.SaveRecipe(c.Request().Context(), &usecase.SaveRecipeInput{
		Recipe:        recipe,
		CurrentUserID: context.GetUserIDPtr(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, saved, "Recipe updated successfully")
}

// Get returns a single recipe aggregate.
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "")
}

// List returns the recipes visible to the current user.
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.uc.ListRecipes(c.Request().Context(), context.GetUserIDPtr(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "")
}

// Search performs a substring search over recipes.
func (h *RecipeHandler) Search(c echo.Context) error {
	recipes, err := h.uc.SearchRecipes(c.Request().Context(), c.QueryParam("q"), context.GetUserIDPtr(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "")
}

// ByCategory returns recipes in the given category.
func (h *RecipeHandler) ByCategory(c echo.Context) error {
	recipes, err := h.uc.RecipesByCategory(c.Request().Context(), c.Param("category"), context.GetUserIDPtr(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "")
}

// Delete removes a recipe and its ingredients and instructions.
func (h *RecipeHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	if err := h.uc.DeleteRecipe(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Recipe deleted"}, "Recipe deleted successfully")
}

// bindRecipe parses and validates the request body. It never writes to the
// response.
func (h *RecipeHandler) bindRecipe(c echo.Context) (*entity.Recipe, error) {
	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.Wrap(err, "failed to bind recipe input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.Wrap(err, "failed to validate recipe input")
	}

	ingredients := make([]entity.Ingredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, entity.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
		})
	}

	return &entity.Recipe{
		Title:           req.Title,
		Description:     req.Description,
		PreparationTime: req.PreparationTime,
		CookingTime:     req.CookingTime,
		Servings:        req.Servings,
		Difficulty:      req.Difficulty,
		Category:        req.Category,
		Visibility:      entity.Visibility(req.Visibility),
		Ingredients:     ingredients,
		Instructions:    req.Instructions,
	}, nil
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
