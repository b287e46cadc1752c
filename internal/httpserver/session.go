package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName   = "sfgw_session"
	sessionCookieMaxAge = 30 * 24 * time.Hour
)

// currentSessionID reads the caller's session cookie, empty if absent.
func currentSessionID(c *gin.Context) string {
	sid, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return sid
}

// ensureSessionID returns the caller's session ID, minting one and setting
// the cookie when the browser has none yet.
func ensureSessionID(c *gin.Context) string {
	if sid := currentSessionID(c); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, sid, int(sessionCookieMaxAge.Seconds()), "/", "", true, true)
	return sid
}
