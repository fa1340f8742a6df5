// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"recipebox/internal/domain/entity"
)

// ErrRecipeNotFound is a domain-specific error returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the standard operations for recipe persistence.
// A recipe is stored as one aggregate: the parent row together with its
// ingredient rows and its ordered instruction rows.
type RecipeRepository interface {
	// Save validates and persists the aggregate. A recipe without an ID is
	// inserted and returned with its generated identity; a recipe with an ID
	// is updated, with both child collections deleted and fully re-inserted.
	// Callers are expected to run Save inside a transaction so a failed child
	// write rolls back the parent write as well.
	Save(ctx context.Context, recipe *entity.Recipe) (*entity.Recipe, error)

	// FindByID retrieves one recipe with its children fully loaded,
	// instructions ordered by step number. Returns ErrRecipeNotFound when
	// no such row exists.
	FindByID(ctx context.Context, id int64) (*entity.Recipe, error)

	// FindAll retrieves every recipe with children, in storage order.
	FindAll(ctx context.Context) ([]*entity.Recipe, error)

	// FindAllVisibleFor retrieves every recipe that is public (or has no
	// visibility recorded), plus, when userID is non-nil, every recipe owned
	// by that user regardless of visibility. On schemas that predate the
	// visibility columns it degrades to an unscoped listing.
	FindAllVisibleFor(ctx context.Context, userID *int64) ([]*entity.Recipe, error)

	// Delete removes the recipe and all of its child rows. Deleting an
	// unknown ID is not an error.
	Delete(ctx context.Context, id int64) error
}
