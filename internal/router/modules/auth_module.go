package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/container"
	handlers "github.com/little-software-engineer/fridge-recipe-finder/internal/interface/http"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/interface/middleware"
)

// AuthModule wires registration and login.
// Public: POST /api/auth/register, POST /api/auth/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Per-IP limits keep credential stuffing and enumeration slow.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
