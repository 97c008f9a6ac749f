package repository

import (
	"context"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
)

// IngredientRepository persists the name-only ingredient catalog.
type IngredientRepository interface {
	// Create inserts a new ingredient; ErrDuplicate when the name exists.
	Create(ctx context.Context, ing *entity.Ingredient) error
	List(ctx context.Context) ([]entity.Ingredient, error)
}
