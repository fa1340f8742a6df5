package postgres

import (
	"testing"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func validTestRecipe() *entity.Recipe {
	owner := int64(7)
	return &entity.Recipe{
		Title:           "Chocolate Cake",
		Description:     "A rich chocolate cake",
		PreparationTime: 20,
		CookingTime:     45,
		Servings:        8,
		Difficulty:      "Medium",
		Category:        "Dessert",
		OwnerUserID:     &owner,
		Visibility:      entity.VisibilityPublic,
		Ingredients: []entity.Ingredient{
			{Name: "Flour", Quantity: 200, Unit: "grams"},
			{Name: "Chocolate", Quantity: 150, Unit: "grams", Notes: "dark"},
		},
		Instructions: []string{"Mix the dry ingredients", "Bake for 45 minutes"},
	}
}

func TestValidateRecipe(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*entity.Recipe)
		wantErr bool
	}{
		{"valid recipe", func(r *entity.Recipe) {}, false},
		{"zero times and unspecified quantity are allowed", func(r *entity.Recipe) {
			r.PreparationTime = 0
			r.CookingTime = 0
			r.Ingredients[0].Quantity = 0
		}, false},
		{"empty title", func(r *entity.Recipe) { r.Title = "" }, true},
		{"whitespace title", func(r *entity.Recipe) { r.Title = "   " }, true},
		{"empty description", func(r *entity.Recipe) { r.Description = "" }, true},
		{"negative preparation time", func(r *entity.Recipe) { r.PreparationTime = -1 }, true},
		{"negative cooking time", func(r *entity.Recipe) { r.CookingTime = -5 }, true},
		{"zero servings", func(r *entity.Recipe) { r.Servings = 0 }, true},
		{"negative servings", func(r *entity.Recipe) { r.Servings = -2 }, true},
		{"empty difficulty", func(r *entity.Recipe) { r.Difficulty = "" }, true},
		{"empty category", func(r *entity.Recipe) { r.Category = "" }, true},
		{"unnamed ingredient", func(r *entity.Recipe) { r.Ingredients[1].Name = " " }, true},
		{"negative ingredient quantity", func(r *entity.Recipe) { r.Ingredients[0].Quantity = -1 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recipe := validTestRecipe()
			tc.mutate(recipe)

			err := validateRecipe(recipe)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRecipe_Nil(t *testing.T) {
	err := validateRecipe(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBuildInstructionRows_NumbersFromListOrder(t *testing.T) {
	rows := buildInstructionRows(3, []model.InstructionModel{
		{Text: "Chop the onions"},
		{Text: "Fry until golden"},
		{Text: "Season to taste"},
	})

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, int64(3), row.RecipeID)
		assert.Equal(t, i+1, row.StepNumber)
	}
	assert.Equal(t, "Fry until golden", rows[1].Text)
}

func TestBuildInstructionRows_SkipsBlankSteps(t *testing.T) {
	rows := buildInstructionRows(1, []model.InstructionModel{
		{Text: "First"},
		{Text: "   "},
		{Text: ""},
		{Text: "Second"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].StepNumber)
	assert.Equal(t, "First", rows[0].Text)
	assert.Equal(t, 2, rows[1].StepNumber)
	assert.Equal(t, "Second", rows[1].Text)
}

func TestBuildIngredientRows_ReassignsIdentity(t *testing.T) {
	rows := buildIngredientRows(9, []model.IngredientModel{
		{ID: 55, RecipeID: 4, Name: "Salt", Quantity: 1, Unit: "tsp"},
		{ID: 56, RecipeID: 4, Name: "Pepper"},
	})

	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Zero(t, row.ID, "stale child identities must not survive a re-save")
		assert.Equal(t, int64(9), row.RecipeID)
	}
	assert.Equal(t, "Salt", rows[0].Name)
	assert.Equal(t, "Pepper", rows[1].Name)
}

func TestRecipeMapping_RoundTrip(t *testing.T) {
	recipe := validTestRecipe()
	recipe.ID = 11

	mapped := toRecipeDomain(fromRecipeDomain(recipe))

	require.NotNil(t, mapped)
	assert.Equal(t, recipe.ID, mapped.ID)
	assert.Equal(t, recipe.Title, mapped.Title)
	assert.Equal(t, recipe.Description, mapped.Description)
	assert.Equal(t, recipe.PreparationTime, mapped.PreparationTime)
	assert.Equal(t, recipe.CookingTime, mapped.CookingTime)
	assert.Equal(t, recipe.Servings, mapped.Servings)
	assert.Equal(t, recipe.Difficulty, mapped.Difficulty)
	assert.Equal(t, recipe.Category, mapped.Category)
	assert.Equal(t, recipe.OwnerUserID, mapped.OwnerUserID)
	assert.Equal(t, recipe.Visibility, mapped.Visibility)
	assert.Equal(t, recipe.Instructions, mapped.Instructions)
	require.Len(t, mapped.Ingredients, len(recipe.Ingredients))
	for i := range recipe.Ingredients {
		assert.Equal(t, recipe.Ingredients[i].Name, mapped.Ingredients[i].Name)
		assert.Equal(t, recipe.Ingredients[i].Quantity, mapped.Ingredients[i].Quantity)
		assert.Equal(t, recipe.Ingredients[i].Unit, mapped.Ingredients[i].Unit)
		assert.Equal(t, recipe.Ingredients[i].Notes, mapped.Ingredients[i].Notes)
	}
}

func TestFromRecipeDomain_BlankVisibilityStaysNull(t *testing.T) {
	recipe := validTestRecipe()
	recipe.Visibility = ""

	recipeM := fromRecipeDomain(recipe)
	assert.Nil(t, recipeM.Visibility, "blank visibility maps to NULL, defaulting happens at save time")

	mapped := toRecipeDomain(recipeM)
	assert.Equal(t, entity.Visibility(""), mapped.Visibility)
	assert.True(t, mapped.Visibility.IsPublic(), "legacy rows without visibility read as public")
}

func TestFromRecipeDomain_NilOwnerStaysNil(t *testing.T) {
	recipe := validTestRecipe()
	recipe.OwnerUserID = nil

	mapped := toRecipeDomain(fromRecipeDomain(recipe))
	assert.Nil(t, mapped.OwnerUserID)
}

func TestChildInsertError(t *testing.T) {
	t.Run("translated foreign key violation", func(t *testing.T) {
		err := childInsertError(gorm.ErrForeignKeyViolated, "ingredients")
		assert.ErrorIs(t, err, domainerrors.ErrRecipeSaveFailed)
	})

	t.Run("raw driver foreign key message", func(t *testing.T) {
		driverErr := errors.New(`insert or update on table "ingredient" violates foreign key constraint (SQLSTATE 23503)`)
		err := childInsertError(driverErr, "ingredients")
		assert.ErrorIs(t, err, domainerrors.ErrRecipeSaveFailed)
	})

	t.Run("other failures stay database execute errors", func(t *testing.T) {
		err := childInsertError(errors.New("connection reset by peer"), "instructions")

		var dbErr *domainerrors.DatabaseExecuteError
		require.ErrorAs(t, err, &dbErr)
		assert.NotErrorIs(t, err, domainerrors.ErrRecipeSaveFailed)
	})
}
