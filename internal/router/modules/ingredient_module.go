package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/little-software-engineer/fridge-recipe-finder/internal/interface/http"
)

// IngredientModule wires the ingredient catalog.
// Public: GET /api/ingredients, POST /api/ingredients
type IngredientModule struct {
	Handler *handlers.IngredientHandler
}

func NewIngredientModule(h *handlers.IngredientHandler) *IngredientModule {
	return &IngredientModule{Handler: h}
}

func (m *IngredientModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ingredients", m.Handler.List)
	rg.POST("/ingredients", m.Handler.Add)
}
