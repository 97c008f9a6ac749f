package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/little-software-engineer/fridge-recipe-finder/pkg/helpers"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/i18n"
	"github.com/little-software-engineer/fridge-recipe-finder/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"

	bearerPrefix = "Bearer "
)

// Auth validates the Authorization bearer token and injects the
// authenticated identity into the Gin context. Requests without a
// valid token never reach business logic.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			response.AbortMessage(c, http.StatusUnauthorized, i18n.T(Lang(c), "auth.required"))
			return
		}

		claims, err := jwt.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			key := "auth.invalid_token"
			if errors.Is(err, helpers.ErrTokenExpired) {
				key = "auth.token_expired"
			}
			response.AbortMessage(c, http.StatusUnauthorized, i18n.T(Lang(c), key))
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}
