package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/repository"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// Create inserts a favorite. The unique index on (user_id, title, link)
// rejects exact re-saves; two concurrent saves of the same recipe
// cannot both succeed.
func (r *FavoriteRepository) Create(ctx context.Context, f *entity.Favorite) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO recipes (title, image, link, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, f.Title, f.Image, f.Link, f.UserID)

	if err := row.Scan(&f.ID, &f.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *FavoriteRepository) ListByOwner(ctx context.Context, userID string) ([]entity.Favorite, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, image, link, user_id, created_at
		FROM recipes
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make([]entity.Favorite, 0)
	for rows.Next() {
		var f entity.Favorite
		if err := rows.Scan(&f.ID, &f.Title, &f.Image, &f.Link, &f.UserID, &f.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// DeleteByIDAndOwner deletes with a compound filter so ownership is
// checked and the row removed in one atomic statement.
func (r *FavoriteRepository) DeleteByIDAndOwner(ctx context.Context, id, userID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM recipes
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

var _ repository.FavoriteRepository = (*FavoriteRepository)(nil)
