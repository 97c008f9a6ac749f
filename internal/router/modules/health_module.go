package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/little-software-engineer/fridge-recipe-finder/internal/interface/http"
)

// HealthModule exposes the liveness probe.
// Public: GET /api/health
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Handler.Check)
}
