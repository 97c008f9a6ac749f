package repository

import (
	"context"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
)

// FavoriteRepository defines owner-scoped persistence for saved recipes.
type FavoriteRepository interface {
	// Create persists a favorite and fills in ID and CreatedAt.
	// Returns ErrDuplicate when the owner already saved the same
	// (title, link) pair.
	Create(ctx context.Context, f *entity.Favorite) error

	// ListByOwner returns all favorites of the given user, oldest first.
	ListByOwner(ctx context.Context, userID string) ([]entity.Favorite, error)

	// DeleteByIDAndOwner removes the favorite only when it exists and
	// belongs to userID, as a single compound delete. Reports whether
	// a row was removed.
	DeleteByIDAndOwner(ctx context.Context, id, userID string) (bool, error)
}
