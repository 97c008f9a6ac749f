package repository

import (
	"context"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Email uniqueness is case-insensitive; implementations normalize on
// both write and lookup.
type UserRepository interface {
	// Create persists a new user and fills in ID and CreatedAt.
	// Returns ErrDuplicate when the email is already registered.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
