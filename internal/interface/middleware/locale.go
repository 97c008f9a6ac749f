package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/little-software-engineer/fridge-recipe-finder/pkg/i18n"
)

const CtxLangKey = "lang"

// Locale resolves the response language from the Accept-Language
// header and stores it in the Gin context for handlers.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxLangKey, i18n.FromAcceptLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// Lang returns the request language resolved by Locale, defaulting to
// Serbian when the middleware did not run.
func Lang(c *gin.Context) string {
	if lang := c.GetString(CtxLangKey); lang != "" {
		return lang
	}
	return i18n.LangSerbian
}
