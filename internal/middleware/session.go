package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionKey is the gin context key holding the caller's session id.
	SessionKey = "session_id"

	sessionCookie = "session_id"
	cookieMaxAge  = 30 * 24 * 60 * 60
)

// Session resolves the caller's session id from the X-Session-ID header, the
// session cookie or the query string, minting a fresh uuid when absent or
// malformed. The id is echoed back as a cookie and a response header.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID, _ = c.Cookie(sessionCookie)
		}
		if sessionID == "" {
			sessionID = c.Query("session_id")
		}

		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		c.Set(SessionKey, sessionID)

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sessionID, cookieMaxAge, "/", "", false, true)
		c.Header("X-Session-ID", sessionID)

		c.Next()
	}
}

// SessionID returns the session id attached by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
