package entity

// Ingredient is a name-only catalog entry, unique by name.
type Ingredient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
