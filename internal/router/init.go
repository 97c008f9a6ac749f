package router

import (
	"github.com/little-software-engineer/fridge-recipe-finder/internal/application"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/container"
	pginfra "github.com/little-software-engineer/fridge-recipe-finder/internal/infrastructure/postgres"
	handlers "github.com/little-software-engineer/fridge-recipe-finder/internal/interface/http"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/router/modules"
)

// InitModules builds all feature modules from the container singletons
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(pool)
	favoriteRepo := pginfra.NewFavoriteRepository(pool)
	ingredientRepo := pginfra.NewIngredientRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	favoriteSvc := application.NewFavoriteService(favoriteRepo, logger)
	recipeSvc := application.NewRecipeService(container.GetRecipeAPI(), logger)
	ingredientSvc := application.NewIngredientService(ingredientRepo, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewFavoriteModule(handlers.NewFavoriteHandler(favoriteSvc)))
	r.Add(modules.NewRecipeModule(handlers.NewRecipeHandler(recipeSvc)))
	r.Add(modules.NewIngredientModule(handlers.NewIngredientHandler(ingredientSvc)))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(pool)))
}
