package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/container"
	handlers "github.com/little-software-engineer/fridge-recipe-finder/internal/interface/http"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/interface/middleware"
)

// RecipeModule wires the public recipe search passthrough.
// Public: GET /api/recipes
type RecipeModule struct {
	Handler *handlers.RecipeHandler
}

func NewRecipeModule(h *handlers.RecipeHandler) *RecipeModule {
	return &RecipeModule{Handler: h}
}

func (m *RecipeModule) Register(rg *gin.RouterGroup) {
	// Each search fans out to the upstream API; keep the per-IP budget modest.
	searchLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/recipes", searchLimiter, m.Handler.Search)
}
