package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/repository"
)

type IngredientRepository struct {
	pool *pgxpool.Pool
}

func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{pool: pool}
}

func (r *IngredientRepository) Create(ctx context.Context, ing *entity.Ingredient) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO ingredients (name)
		VALUES ($1)
		RETURNING id
	`, ing.Name)

	if err := row.Scan(&ing.ID); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *IngredientRepository) List(ctx context.Context) ([]entity.Ingredient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name
		FROM ingredients
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := make([]entity.Ingredient, 0)
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

var _ repository.IngredientRepository = (*IngredientRepository)(nil)
