package postgres

import (
	"log/slog"

	"recipebox/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// SchemaCapabilities records which optional columns the connected database
// actually has. Databases created by the legacy application lack the
// owner_user_id and visibility columns on the recipe table; listings degrade
// to an unscoped query against such schemas.
//
// The columns are probed once at startup, not per query.
type SchemaCapabilities struct {
	// RecipeVisibility is true when the recipe table carries both the
	// owner_user_id and visibility columns.
	RecipeVisibility bool
}

// CapabilitiesParams defines the dependencies for the schema probe.
type CapabilitiesParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// NewSchemaCapabilities probes the recipe table through the GORM migrator.
func NewSchemaCapabilities(params CapabilitiesParams) *SchemaCapabilities {
	migrator := params.DB.Migrator()

	caps := &SchemaCapabilities{
		RecipeVisibility: migrator.HasColumn(&model.RecipeModel{}, "owner_user_id") &&
			migrator.HasColumn(&model.RecipeModel{}, "visibility"),
	}

	if !caps.RecipeVisibility {
		params.Logger.Warn("Legacy recipe schema detected, visibility scoping disabled",
			slog.Bool("recipeVisibility", caps.RecipeVisibility))
	}

	return caps
}
