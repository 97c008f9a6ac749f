package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
)

// searchResultCap bounds how many recipes a single search returns.
const searchResultCap = 5

// RecipeAPI is the upstream recipe-search boundary.
type RecipeAPI interface {
	FindByIngredients(ctx context.Context, ingredients string, number int) ([]entity.Recipe, error)
	Information(ctx context.Context, id int64) (*entity.RecipeDetail, error)
}

// RecipeService forwards ingredient searches upstream and enriches
// each hit with a per-recipe detail lookup.
type RecipeService struct {
	API    RecipeAPI
	Logger *logrus.Logger
}

func NewRecipeService(api RecipeAPI, logger *logrus.Logger) *RecipeService {
	return &RecipeService{API: api, Logger: logger}
}

// SearchByIngredients returns up to searchResultCap recipes matching a
// comma-separated ingredient list. Detail lookups run concurrently and
// settle before the batch returns; a failed lookup leaves that recipe
// with base fields only and never fails the batch.
func (s *RecipeService) SearchByIngredients(ctx context.Context, ingredients string) ([]entity.Recipe, error) {
	if strings.TrimSpace(ingredients) == "" {
		return nil, ErrValidation("recipes.ingredients_required")
	}

	recipes, err := s.API.FindByIngredients(ctx, ingredients, searchResultCap)
	if err != nil {
		s.Logger.WithError(err).WithField("op", "search_recipes").Error("upstream search failed")
		return nil, ErrUpstream("recipes.upstream_error", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range recipes {
		g.Go(func() error {
			detail, err := s.API.Information(gctx, recipes[i].ID)
			if err != nil {
				s.Logger.WithError(err).WithFields(logrus.Fields{"op": "recipe_detail", "recipe_id": recipes[i].ID}).Warn("detail lookup failed, returning base fields")
				return nil
			}
			recipes[i].Enrich(detail)
			return nil
		})
	}
	// Goroutines only ever return nil; Wait is a settle barrier.
	_ = g.Wait()

	return recipes, nil
}
