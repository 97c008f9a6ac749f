package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/repository"
)

// IngredientService maintains the name-only ingredient catalog.
type IngredientService struct {
	Ingredients repository.IngredientRepository
	Logger      *logrus.Logger
}

func NewIngredientService(ingredients repository.IngredientRepository, logger *logrus.Logger) *IngredientService {
	return &IngredientService{Ingredients: ingredients, Logger: logger}
}

// Add inserts an ingredient by trimmed name; existing names conflict.
func (s *IngredientService) Add(ctx context.Context, name string) (*entity.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation("ingredients.name_required")
	}

	ing := &entity.Ingredient{Name: name}
	if err := s.Ingredients.Create(ctx, ing); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict("ingredients.duplicate")
		}
		s.Logger.WithError(err).WithField("op", "add_ingredient").Error("create ingredient failed")
		return nil, ErrInternal(err)
	}
	return ing, nil
}

func (s *IngredientService) List(ctx context.Context) ([]entity.Ingredient, error) {
	ingredients, err := s.Ingredients.List(ctx)
	if err != nil {
		s.Logger.WithError(err).WithField("op", "list_ingredients").Error("list ingredients failed")
		return nil, ErrInternal(err)
	}
	return ingredients, nil
}
