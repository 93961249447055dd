package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tjcichra/tira-backend/internal/shared/config"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "tirauth"

// SetSessionCookie sets the session token as an HttpOnly cookie. When
// expiresAt is nil ("remember me" login) the cookie is session-scoped
// with no Expires attribute.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, expiresAt *time.Time) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))

	maxAge := 0
	if expiresAt != nil {
		maxAge = int(time.Until(*expiresAt).Seconds())
		if maxAge < 1 {
			maxAge = 1
		}
	}

	c.SetCookie(
		SessionCookie,
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		SessionCookie,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetSessionToken retrieves the session token from the request cookie,
// or empty string when absent.
func GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
