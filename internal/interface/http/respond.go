package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/little-software-engineer/fridge-recipe-finder/internal/application"
	"github.com/little-software-engineer/fridge-recipe-finder/internal/interface/middleware"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/i18n"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/response"
)

// statusFor maps the service error taxonomy to HTTP statuses.
func statusFor(kind application.Kind) int {
	switch kind {
	case application.KindValidation:
		return http.StatusBadRequest
	case application.KindAuthentication:
		return http.StatusUnauthorized
	case application.KindNotFound:
		return http.StatusNotFound
	case application.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a localized message for a service error. Internal
// detail (driver errors, upstream responses) never reaches the client.
func respondError(c *gin.Context, err error) {
	lang := middleware.Lang(c)

	var appErr *application.Error
	if !errors.As(err, &appErr) {
		response.Message(c, http.StatusInternalServerError, i18n.T(lang, "server.error"))
		return
	}
	response.Message(c, statusFor(appErr.Kind), i18n.T(lang, appErr.Key))
}

// localize is a convenience for handler-level messages.
func localize(c *gin.Context, key string) string {
	return i18n.T(middleware.Lang(c), key)
}
