package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/application"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/interface/middleware"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/response"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/validation"
)

type FavoriteHandler struct {
	Svc *application.FavoriteService
}

func NewFavoriteHandler(svc *application.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Svc: svc}
}

type saveFavoriteRequest struct {
	Title    string `json:"title" binding:"required"`
	Image    string `json:"image"`
	Link     string `json:"link"`
	SourceID int64  `json:"sourceId"`
}

// Save POST /api/favorites
func (h *FavoriteHandler) Save(c *gin.Context) {
	var req saveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.MessageWithDetails(c, http.StatusBadRequest, localize(c, "favorites.title_required"), validation.ToDetails(err))
		return
	}

	fav, err := h.Svc.Save(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.SaveFavoriteInput{
		Title:    req.Title,
		Image:    req.Image,
		Link:     req.Link,
		SourceID: req.SourceID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fav)
}

// List GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	favorites, err := h.Svc.List(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// Delete DELETE /api/favorites/:id
func (h *FavoriteHandler) Delete(c *gin.Context) {
	err := h.Svc.Remove(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Message(c, http.StatusOK, localize(c, "favorites.deleted"))
}
