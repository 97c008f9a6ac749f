package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/application"
)

type RecipeHandler struct {
	Svc *application.RecipeService
}

func NewRecipeHandler(svc *application.RecipeService) *RecipeHandler {
	return &RecipeHandler{Svc: svc}
}

// Search GET /api/recipes?ingredients=a,b,c
func (h *RecipeHandler) Search(c *gin.Context) {
	recipes, err := h.Svc.SearchByIngredients(c.Request.Context(), c.Query("ingredients"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}
