package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/oddam/donations/internal/i18n"
	"github.com/oddam/donations/pkg/response"
)

const langCookieMaxAge = 365 * 24 * 60 * 60

// Locale resolves the request language and remembers an explicit ?lang= choice in a cookie.
func Locale(fallback language.Tag) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag, explicit := i18n.Resolve(c.Request, fallback)
		if explicit {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(i18n.LangCookieName, tag.String(), langCookieMaxAge, "/", "", false, true)
		}
		c.Set(response.ContextLanguage, tag)
		c.Next()
	}
}
