package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/application"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/entity"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/domain/repository"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/interface/middleware"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/helpers"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/validation"
)

// In-memory stores mirroring the Postgres uniqueness and ownership
// semantics, so handler tests exercise the full stack below the router.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	key := strings.ToLower(u.Email)
	if _, exists := m.users[key]; exists {
		return repository.ErrDuplicate
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	m.users[key] = u
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

type memFavoriteRepo struct {
	favorites []entity.Favorite
}

func (m *memFavoriteRepo) Create(ctx context.Context, f *entity.Favorite) error {
	for _, existing := range m.favorites {
		if existing.UserID == f.UserID && existing.Title == f.Title && existing.Link == f.Link {
			return repository.ErrDuplicate
		}
	}
	f.ID = uuid.NewString()
	f.CreatedAt = time.Now()
	m.favorites = append(m.favorites, *f)
	return nil
}

func (m *memFavoriteRepo) ListByOwner(ctx context.Context, userID string) ([]entity.Favorite, error) {
	out := make([]entity.Favorite, 0)
	for _, f := range m.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFavoriteRepo) DeleteByIDAndOwner(ctx context.Context, id, userID string) (bool, error) {
	for i, f := range m.favorites {
		if f.ID == id && f.UserID == userID {
			m.favorites = append(m.favorites[:i], m.favorites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memIngredientRepo struct {
	ingredients []entity.Ingredient
}

func (m *memIngredientRepo) Create(ctx context.Context, ing *entity.Ingredient) error {
	for _, existing := range m.ingredients {
		if existing.Name == ing.Name {
			return repository.ErrDuplicate
		}
	}
	ing.ID = uuid.NewString()
	m.ingredients = append(m.ingredients, *ing)
	return nil
}

func (m *memIngredientRepo) List(ctx context.Context) ([]entity.Ingredient, error) {
	return append([]entity.Ingredient(nil), m.ingredients...), nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// newTestRouter wires the API surface over in-memory stores.
func newTestRouter(recipeAPI application.RecipeAPI) (*gin.Engine, *helpers.JWTManager) {
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := quietLogger()
	jwt := helpers.NewJWTManager("test-secret", 168*time.Hour)

	authSvc := application.NewAuthService(newMemUserRepo(), jwt, logger)
	favoriteSvc := application.NewFavoriteService(&memFavoriteRepo{}, logger)
	ingredientSvc := application.NewIngredientService(&memIngredientRepo{}, logger)

	authHandler := NewAuthHandler(authSvc, logger)
	favoriteHandler := NewFavoriteHandler(favoriteSvc)
	ingredientHandler := NewIngredientHandler(ingredientSvc)

	r := gin.New()
	r.Use(middleware.Locale())

	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("/favorites")
	protected.Use(middleware.Auth(jwt))
	protected.POST("", favoriteHandler.Save)
	protected.GET("", favoriteHandler.List)
	protected.DELETE("/:id", favoriteHandler.Delete)

	api.GET("/ingredients", ingredientHandler.List)
	api.POST("/ingredients", ingredientHandler.Add)

	if recipeAPI != nil {
		recipeHandler := NewRecipeHandler(application.NewRecipeService(recipeAPI, logger))
		api.GET("/recipes", recipeHandler.Search)
	}

	return r, jwt
}
