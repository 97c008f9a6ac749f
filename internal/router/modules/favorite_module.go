package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/container"
	handlers "github.com/little-software-engineer/fridge-recipe-finder/internal/interface/http"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/interface/middleware"
)

// FavoriteModule wires the owner-scoped favorites routes.
// Protected: POST /api/favorites, GET /api/favorites, DELETE /api/favorites/:id
type FavoriteModule struct {
	Handler *handlers.FavoriteHandler
}

func NewFavoriteModule(h *handlers.FavoriteHandler) *FavoriteModule {
	return &FavoriteModule{Handler: h}
}

func (m *FavoriteModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/favorites")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Save)
		auth.GET("", m.Handler.List)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
