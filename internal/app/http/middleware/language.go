package middleware

import (
	"portfolio-cms/internal/api/rest"
	"portfolio-cms/internal/domain/i18n"

	"github.com/gin-gonic/gin"
)

// Language negotiates the response language from Accept-Language and
// echoes it back in Content-Language.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Negotiate(c.GetHeader("Accept-Language"))
		rest.SetLang(c, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}
