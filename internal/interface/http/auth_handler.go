package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/application"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/response"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.MessageWithDetails(c, http.StatusBadRequest, localize(c, "auth.fields_required"), validation.ToDetails(err))
		return
	}

	session, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.WithField("user_id", session.User.ID).Info("user registered")
	c.JSON(http.StatusCreated, sessionResponse{Token: session.Token, User: session.User})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.MessageWithDetails(c, http.StatusBadRequest, localize(c, "auth.fields_required"), validation.ToDetails(err))
		return
	}

	session, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{Token: session.Token, User: session.User})
}
