// Package model contains the GORM persistence models mirroring the database tables.
package model

// RecipeModel mirrors the 'recipe' table. The owner and visibility columns
// are nullable because databases created by the legacy application predate
// them entirely.
type RecipeModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	Title           string  `gorm:"type:varchar(255);not null"`
	Description     string  `gorm:"type:text;not null"`
	PreparationTime int     `gorm:"column:preparation_time;not null"`
	CookingTime     int     `gorm:"column:cooking_time;not null"`
	Servings        int     `gorm:"not null"`
	Difficulty      string  `gorm:"type:varchar(50);not null"`
	Category        string  `gorm:"type:varchar(100);not null"`
	OwnerUserID     *int64  `gorm:"column:owner_user_id"`
	Visibility      *string `gorm:"type:varchar(10)"`

	Ingredients  []IngredientModel  `gorm:"foreignKey:RecipeID"`
	Instructions []InstructionModel `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipe"
}

// IngredientModel mirrors the 'ingredient' table. Rows are deleted and fully
// re-inserted whenever the parent recipe is saved.
type IngredientModel struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	RecipeID int64   `gorm:"column:recipe_id;not null;index"`
	Name     string  `gorm:"type:varchar(255);not null"`
	Quantity float64 `gorm:"not null"`
	Unit     string  `gorm:"type:varchar(50)"`
	Notes    string  `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredient"
}

// InstructionModel mirrors the 'instruction' table. A step has no identity of
// its own; the (recipe_id, step_number) pair is the key and step_number is
// derived from list order at save time.
type InstructionModel struct {
	RecipeID   int64  `gorm:"column:recipe_id;primaryKey;autoIncrement:false"`
	StepNumber int    `gorm:"column:step_number;primaryKey;autoIncrement:false"`
	Text       string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (InstructionModel) TableName() string {
	return "instruction"
}
