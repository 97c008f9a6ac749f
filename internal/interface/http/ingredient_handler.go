package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/application"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/response"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/validation"
)

type IngredientHandler struct {
	Svc *application.IngredientService
}

func NewIngredientHandler(svc *application.IngredientService) *IngredientHandler {
	return &IngredientHandler{Svc: svc}
}

type addIngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

// Add POST /api/ingredients
func (h *IngredientHandler) Add(c *gin.Context) {
	var req addIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.MessageWithDetails(c, http.StatusBadRequest, localize(c, "ingredients.name_required"), validation.ToDetails(err))
		return
	}

	ing, err := h.Svc.Add(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ing)
}

// List GET /api/ingredients
func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}
