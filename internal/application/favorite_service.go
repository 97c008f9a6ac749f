package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/repository"
)

// SaveFavoriteInput carries a recipe summary a user wants saved.
// SourceID is the upstream recipe id, used to derive the canonical
// link when the client did not send one.
type SaveFavoriteInput struct {
	Title    string
	Image    string
	Link     string
	SourceID int64
}

// FavoriteService orchestrates owner-scoped favorites CRUD.
type FavoriteService struct {
	Favorites repository.FavoriteRepository
	Logger    *logrus.Logger
}

func NewFavoriteService(favorites repository.FavoriteRepository, logger *logrus.Logger) *FavoriteService {
	return &FavoriteService{Favorites: favorites, Logger: logger}
}

// recipeLink derives the canonical upstream page for a recipe:
// lowercase title, spaces to hyphens, suffixed with the provider id.
func recipeLink(title string, id int64) string {
	slug := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	return fmt.Sprintf("https://spoonacular.com/recipes/%s-%d", slug, id)
}

// Save stores a favorite for the given user. Re-saving the same
// (title, link) pair conflicts.
func (s *FavoriteService) Save(ctx context.Context, userID string, in SaveFavoriteInput) (*entity.Favorite, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrValidation("favorites.title_required")
	}

	link := in.Link
	if link == "" && in.SourceID != 0 {
		link = recipeLink(in.Title, in.SourceID)
	}

	f := &entity.Favorite{
		Title:  in.Title,
		Image:  in.Image,
		Link:   link,
		UserID: userID,
	}
	if err := s.Favorites.Create(ctx, f); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict("favorites.duplicate")
		}
		s.Logger.WithError(err).WithFields(logrus.Fields{"op": "save_favorite", "user_id": userID}).Error("create favorite failed")
		return nil, ErrInternal(err)
	}
	return f, nil
}

// List returns the caller's favorites and nobody else's.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]entity.Favorite, error) {
	favorites, err := s.Favorites.ListByOwner(ctx, userID)
	if err != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"op": "list_favorites", "user_id": userID}).Error("list favorites failed")
		return nil, ErrInternal(err)
	}
	return favorites, nil
}

// Remove deletes the favorite when it exists and belongs to the caller.
// A missing favorite and someone else's favorite produce the same
// not-found outcome.
func (s *FavoriteService) Remove(ctx context.Context, userID, favoriteID string) error {
	removed, err := s.Favorites.DeleteByIDAndOwner(ctx, favoriteID, userID)
	if err != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"op": "remove_favorite", "user_id": userID, "favorite_id": favoriteID}).Error("delete favorite failed")
		return ErrInternal(err)
	}
	if !removed {
		return ErrNotFound("favorites.not_found")
	}
	return nil
}
