package entity

// Visibility controls who may see a recipe in listings.
type Visibility string

const (
	// VisibilityPublic makes the recipe visible to every caller.
	VisibilityPublic Visibility = "PUBLIC"

	// VisibilityPrivate restricts the recipe to its owner.
	VisibilityPrivate Visibility = "PRIVATE"
)

// IsPublic reports whether the recipe should appear in unauthenticated
// listings. Legacy rows carry an empty visibility and are treated as public.
func (v Visibility) IsPublic() bool {
	return v == VisibilityPublic || v == ""
}
