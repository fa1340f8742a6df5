package postgres

import (
	"context"
	"strings"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// legacyRecipeColumns are the columns every schema generation has. Queries
// against a pre-visibility database restrict themselves to this set.
var legacyRecipeColumns = []string{
	"id", "title", "description", "preparation_time",
	"cooking_time", "servings", "difficulty", "category",
}

// recipeRepository implements the domain.RecipeRepository interface using GORM.
type recipeRepository struct {
	db   *gorm.DB
	caps *SchemaCapabilities
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB, caps *SchemaCapabilities) repository.RecipeRepository {
	return &recipeRepository{db: db, caps: caps}
}

// Save validates and persists the whole aggregate. Validation runs before any
// I/O; a recipe without an ID is inserted, anything else is updated with both
// child collections deleted and re-inserted. An update without an owner keeps
// the stored owner column untouched. Callers run Save through the transaction
// manager so every statement lands in one transaction.
func (repo *recipeRepository) Save(ctx context.Context, recipe *entity.Recipe) (*entity.Recipe, error) {
	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}

	recipeM := fromRecipeDomain(recipe)
	if recipeM.Visibility == nil || *recipeM.Visibility == "" {
		private := string(entity.VisibilityPrivate)
		recipeM.Visibility = &private
	}

	if recipe.ID == 0 {
		if err := repo.parentScope(ctx).Create(recipeM).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert recipe")
		}
	} else {
		var keep []string
		if recipeM.OwnerUserID == nil {
			keep = append(keep, "owner_user_id")
		}
		if err := repo.parentScope(ctx, keep...).Save(recipeM).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update recipe")
		}
		if err := repo.deleteChildren(ctx, recipeM.ID); err != nil {
			return nil, err
		}
	}

	if err := repo.insertChildren(ctx, recipeM); err != nil {
		return nil, err
	}

	return toRecipeDomain(recipeM), nil
}

// parentScope scopes parent-row writes to the columns the schema actually
// has and keeps GORM from touching the child associations implicitly.
func (repo *recipeRepository) parentScope(ctx context.Context, extraOmits ...string) *gorm.DB {
	omits := append([]string{clause.Associations}, extraOmits...)
	if !repo.caps.RecipeVisibility {
		omits = append(omits, "owner_user_id", "visibility")
	}
	return repo.db.WithContext(ctx).Omit(omits...)
}

func (repo *recipeRepository) deleteChildren(ctx context.Context, recipeID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&model.IngredientModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ingredients")
	}

	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&model.InstructionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete instructions")
	}

	return nil
}

func (repo *recipeRepository) insertChildren(ctx context.Context, recipeM *model.RecipeModel) error {
	ingredients := buildIngredientRows(recipeM.ID, recipeM.Ingredients)
	if len(ingredients) > 0 {
		if err := repo.db.WithContext(ctx).Create(&ingredients).Error; err != nil {
			return childInsertError(err, "ingredients")
		}
		recipeM.Ingredients = ingredients
	}

	instructions := buildInstructionRows(recipeM.ID, recipeM.Instructions)
	if len(instructions) > 0 {
		if err := repo.db.WithContext(ctx).Create(&instructions).Error; err != nil {
			return childInsertError(err, "instructions")
		}
	}
	recipeM.Instructions = instructions

	return nil
}

// childInsertError maps a failed child-row insert to a domain error. A foreign
// key violation means the parent recipe row disappeared mid-save, which is a
// save failure rather than a generic database error.
func childInsertError(err error, table string) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrRecipeSaveFailed.WrapMessage("recipe row missing while inserting " + table)
	}
	return domainerrors.NewDatabaseExecuteError(err, "failed to insert "+table)
}

// FindByID retrieves one recipe with its children fully loaded, instructions
// ordered by step number ascending.
func (repo *recipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	err := repo.readScope(ctx).
		Where("id = ?", id).
		First(&recipeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindAll retrieves every recipe with children, in storage order.
func (repo *recipeRepository) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := repo.readScope(ctx).Find(&recipeModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find all recipes")
	}

	return toRecipeDomainSlice(recipeModels), nil
}

// FindAllVisibleFor retrieves every public (or visibility-less) recipe, plus
// the caller's own recipes when a user ID is supplied. The two conditions are
// OR'd inside a single parameterized query. Pre-visibility schemas fall back
// to the unscoped listing.
func (repo *recipeRepository) FindAllVisibleFor(ctx context.Context, userID *int64) ([]*entity.Recipe, error) {
	if !repo.caps.RecipeVisibility {
		return repo.FindAll(ctx)
	}

	query := repo.readScope(ctx).
		Where("visibility = ? OR visibility IS NULL OR visibility = ''", string(entity.VisibilityPublic))
	if userID != nil {
		query = query.Or("owner_user_id = ?", *userID)
	}

	var recipeModels []*model.RecipeModel
	if err := query.Find(&recipeModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find visible recipes")
	}

	return toRecipeDomainSlice(recipeModels), nil
}

// Delete removes the recipe's child rows first, then the parent row.
// Deleting an unknown or zero ID is a no-op, not an error.
func (repo *recipeRepository) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return nil
	}

	if err := repo.deleteChildren(ctx, id); err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecipeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete recipe")
	}

	return nil
}

// readScope builds the base read query: schema-appropriate column selection
// plus both child collections preloaded in their canonical order.
func (repo *recipeRepository) readScope(ctx context.Context) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Instructions", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		})

	if !repo.caps.RecipeVisibility {
		query = query.Select(legacyRecipeColumns)
	}

	return query
}

// validateRecipe enforces the store's field invariants before any statement
// is issued. Failures surface as ValidationError and are never retried.
func validateRecipe(recipe *entity.Recipe) error {
	if recipe == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("recipe must not be nil")
	}
	if strings.TrimSpace(recipe.Title) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("recipe title must not be empty")
	}
	if strings.TrimSpace(recipe.Description) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("recipe description must not be empty")
	}
	if recipe.PreparationTime < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("preparation time must not be negative")
	}
	if recipe.CookingTime < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("cooking time must not be negative")
	}
	if recipe.Servings <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("servings must be greater than zero")
	}
	if strings.TrimSpace(recipe.Difficulty) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("recipe difficulty must not be empty")
	}
	if strings.TrimSpace(recipe.Category) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("recipe category must not be empty")
	}
	for _, ing := range recipe.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("ingredient name must not be empty")
		}
		if ing.Quantity < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("ingredient quantity must not be negative")
		}
	}
	return nil
}

// buildIngredientRows rebuilds the ingredient child rows for a recipe in
// submission order. Row identities are reassigned on every save.
func buildIngredientRows(recipeID int64, ingredients []model.IngredientModel) []model.IngredientModel {
	rows := make([]model.IngredientModel, 0, len(ingredients))
	for _, ing := range ingredients {
		rows = append(rows, model.IngredientModel{
			RecipeID: recipeID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
		})
	}
	return rows
}

// buildInstructionRows numbers the instruction steps 1-based from list order.
// Blank steps are dropped; the remaining steps are renumbered contiguously.
func buildInstructionRows(recipeID int64, instructions []model.InstructionModel) []model.InstructionModel {
	rows := make([]model.InstructionModel, 0, len(instructions))
	step := 1
	for _, ins := range instructions {
		if strings.TrimSpace(ins.Text) == "" {
			continue
		}
		rows = append(rows, model.InstructionModel{
			RecipeID:   recipeID,
			StepNumber: step,
			Text:       ins.Text,
		})
		step++
	}
	return rows
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	ingredients := make([]entity.Ingredient, 0, len(data.Ingredients))
	for _, ing := range data.Ingredients {
		ingredients = append(ingredients, entity.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
		})
	}

	instructions := make([]string, 0, len(data.Instructions))
	for _, ins := range data.Instructions {
		instructions = append(instructions, ins.Text)
	}

	var visibility entity.Visibility
	if data.Visibility != nil {
		visibility = entity.Visibility(*data.Visibility)
	}

	return &entity.Recipe{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		PreparationTime: data.PreparationTime,
		CookingTime:     data.CookingTime,
		Servings:        data.Servings,
		Difficulty:      data.Difficulty,
		Category:        data.Category,
		OwnerUserID:     data.OwnerUserID,
		Visibility:      visibility,
		Ingredients:     ingredients,
		Instructions:    instructions,
	}
}

func toRecipeDomainSlice(data []*model.RecipeModel) []*entity.Recipe {
	recipes := make([]*entity.Recipe, 0, len(data))
	for _, recipeM := range data {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}
	return recipes
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel for persistence.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	ingredients := make([]model.IngredientModel, 0, len(data.Ingredients))
	for _, ing := range data.Ingredients {
		ingredients = append(ingredients, model.IngredientModel{
			ID:       ing.ID,
			RecipeID: data.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
		})
	}

	instructions := make([]model.InstructionModel, 0, len(data.Instructions))
	for i, text := range data.Instructions {
		instructions = append(instructions, model.InstructionModel{
			RecipeID:   data.ID,
			StepNumber: i + 1,
			Text:       text,
		})
	}

	var visibility *string
	if data.Visibility != "" {
		value := string(data.Visibility)
		visibility = &value
	}

	return &model.RecipeModel{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		PreparationTime: data.PreparationTime,
		CookingTime:     data.CookingTime,
		Servings:        data.Servings,
		Difficulty:      data.Difficulty,
		Category:        data.Category,
		OwnerUserID:     data.OwnerUserID,
		Visibility:      visibility,
		Ingredients:     ingredients,
		Instructions:    instructions,
	}
}
