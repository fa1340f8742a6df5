package postgres

import (
	"context"
	"strings"
	"testing"

	"recipebox/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// recordedStatement is one SQL statement GORM built during a dry run.
type recordedStatement struct {
	SQL  string
	Vars []any
}

// newDryRunRepository opens a dry-run GORM session against the dummy dialector
// and records every statement the repository builds, without a database.
func newDryRunRepository(t *testing.T, caps *SchemaCapabilities) (repository.RecipeRepository, *[]recordedStatement) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	recorded := &[]recordedStatement{}
	record := func(tx *gorm.DB) {
		*recorded = append(*recorded, recordedStatement{
			SQL:  tx.Statement.SQL.String(),
			Vars: append([]any(nil), tx.Statement.Vars...),
		})
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("record_query", record))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("record_create", record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("record_update", record))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("record_delete", record))

	return NewRecipeRepository(db, caps), recorded
}

func insertTupleCount(sql string) int {
	return strings.Count(sql, "),(") + 1
}

func TestRecipeRepository_VisibleListing_AnonymousQuery(t *testing.T) {
	repo, recorded := newDryRunRepository(t, &SchemaCapabilities{RecipeVisibility: true})

	_, err := repo.FindAllVisibleFor(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, *recorded, 1)
	stmt := (*recorded)[0]
	assert.Contains(t, stmt.SQL, "visibility = ? OR visibility IS NULL OR visibility = ''")
	assert.NotContains(t, stmt.SQL, "owner_user_id")
	assert.Equal(t, []any{"PUBLIC"}, stmt.Vars)
}

func TestRecipeRepository_VisibleListing_OwnerScopedQuery(t *testing.T) {
	repo, recorded := newDryRunRepository(t, &SchemaCapabilities{RecipeVisibility: true})

	userID := int64(7)
	_, err := repo.FindAllVisibleFor(context.Background(), &userID)
	require.NoError(t, err)

	require.Len(t, *recorded, 1)
	stmt := (*recorded)[0]
	assert.Contains(t, stmt.SQL, "(visibility = ? OR visibility IS NULL OR visibility = '')",
		"public clause must stay grouped so the owner condition cannot widen it")
	assert.Contains(t, stmt.SQL, "owner_user_id = ?")
	assert.Equal(t, []any{"PUBLIC", int64(7)}, stmt.Vars)
}

func TestRecipeRepository_VisibleListing_LegacySchemaUnscoped(t *testing.T) {
	repo, recorded := newDryRunRepository(t, &SchemaCapabilities{RecipeVisibility: false})

	userID := int64(7)
	_, err := repo.FindAllVisibleFor(context.Background(), &userID)
	require.NoError(t, err)

	require.Len(t, *recorded, 1)
	stmt := (*recorded)[0]
	assert.NotContains(t, stmt.SQL, "visibility")
	assert.NotContains(t, stmt.SQL, "WHERE")
	assert.Contains(t, stmt.SQL, "`title`")
	assert.Empty(t, stmt.Vars)
}

func TestRecipeRepository_Save_UpdateReplacesChildren(t *testing.T) {
	repo, recorded := newDryRunRepository(t, &SchemaCapabilities{RecipeVisibility: true})

	recipe := validTestRecipe()
	recipe.ID = 3

	_, err := repo.Save(context.Background(), recipe)
	require.NoError(t, err)

	require.Len(t, *recorded, 5)

	update := (*recorded)[0]
	assert.True(t, strings.HasPrefix(update.SQL, "UPDATE `recipe`"), update.SQL)
	assert.Contains(t, update.SQL, "WHERE `id` = ?")

	deleteIngredients := (*recorded)[1]
	assert.True(t, strings.HasPrefix(deleteIngredients.SQL, "DELETE FROM `ingredient`"), deleteIngredients.SQL)
	assert.Equal(t, []any{int64(3)}, deleteIngredients.Vars)

	deleteInstructions := (*recorded)[2]
	assert.True(t, strings.HasPrefix(deleteInstructions.SQL, "DELETE FROM `instruction`"), deleteInstructions.SQL)
	assert.Equal(t, []any{int64(3)}, deleteInstructions.Vars)

	insertIngredients := (*recorded)[3]
	assert.True(t, strings.HasPrefix(insertIngredients.SQL, "INSERT INTO `ingredient`"), insertIngredients.SQL)
	assert.Equal(t, len(recipe.Ingredients), insertTupleCount(insertIngredients.SQL),
		"the new ingredient set fully replaces the old one")

	insertInstructions := (*recorded)[4]
	assert.True(t, strings.HasPrefix(insertInstructions.SQL, "INSERT INTO `instruction`"), insertInstructions.SQL)
	assert.Equal(t, len(recipe.Instructions), insertTupleCount(insertInstructions.SQL))
}

func TestRecipeRepository_Save_UpdateOwnerColumn(t *testing.T) {
	t.Run("nil owner leaves the stored owner untouched", func(t *testing.T) {
		repo, recorded := newDryRunRepository(t, &SchemaCapabilities{RecipeVisibility: true})

		recipe := validTestRecipe()
		recipe.ID = 3
		recipe.OwnerUserID = nil

		_, err := repo.Save(context.Background(), recipe)
		require.NoError(t, err)

		require.NotEmpty(t, *recorded)
		assert.NotContains(t, (*recorded)[0].SQL, "owner_user_id")
	})

	t.Run("explicit owner is written", func(t *testing.T) {
		repo, recorded := newDryRunRepository(t, &SchemaCapabilities{RecipeVisibility: true})

		recipe := validTestRecipe()
		recipe.ID = 3

		_, err := repo.Save(context.Background(), recipe)
		require.NoError(t, err)

		require.NotEmpty(t, *recorded)
		assert.Contains(t, (*recorded)[0].SQL, "`owner_user_id`")
	})
}

func TestRecipeRepository_Save_InsertThenChildren(t *testing.T) {
	repo, recorded := newDryRunRepository(t, &SchemaCapabilities{RecipeVisibility: true})

	recipe := validTestRecipe()

	_, err := repo.Save(context.Background(), recipe)
	require.NoError(t, err)

	require.Len(t, *recorded, 3)
	assert.True(t, strings.HasPrefix((*recorded)[0].SQL, "INSERT INTO `recipe`"), (*recorded)[0].SQL)
	assert.True(t, strings.HasPrefix((*recorded)[1].SQL, "INSERT INTO `ingredient`"), (*recorded)[1].SQL)
	assert.True(t, strings.HasPrefix((*recorded)[2].SQL, "INSERT INTO `instruction`"), (*recorded)[2].SQL)
}

func TestRecipeRepository_Delete_RemovesChildrenFirst(t *testing.T) {
	repo, recorded := newDryRunRepository(t, &SchemaCapabilities{RecipeVisibility: true})

	err := repo.Delete(context.Background(), 8)
	require.NoError(t, err)

	require.Len(t, *recorded, 3)
	assert.True(t, strings.HasPrefix((*recorded)[0].SQL, "DELETE FROM `ingredient`"), (*recorded)[0].SQL)
	assert.True(t, strings.HasPrefix((*recorded)[1].SQL, "DELETE FROM `instruction`"), (*recorded)[1].SQL)
	assert.True(t, strings.HasPrefix((*recorded)[2].SQL, "DELETE FROM `recipe`"), (*recorded)[2].SQL)
	for _, stmt := range *recorded {
		assert.Equal(t, []any{int64(8)}, stmt.Vars)
	}
}
