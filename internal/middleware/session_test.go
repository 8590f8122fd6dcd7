package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session())
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, SessionID(c))
	})
	return router
}

func TestSession_AssignsNewID(t *testing.T) {
	router := sessionRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	router.ServeHTTP(w, req)

	sid := w.Body.String()
	_, err := uuid.Parse(sid)
	require.NoError(t, err, "assigned session id should be a uuid")

	assert.Equal(t, sid, w.Header().Get("X-Session-ID"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var found bool
	for _, c := range cookies {
		if c.Name == "session_id" {
			found = true
			assert.Equal(t, sid, c.Value)
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "session cookie should be set")
}

func TestSession_ReusesValidHeaderID(t *testing.T) {
	router := sessionRouter()
	sid := uuid.NewString()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-Session-ID", sid)
	router.ServeHTTP(w, req)

	assert.Equal(t, sid, w.Body.String())
}

func TestSession_ReusesValidCookieID(t *testing.T) {
	router := sessionRouter()
	sid := uuid.NewString()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: sid})
	router.ServeHTTP(w, req)

	assert.Equal(t, sid, w.Body.String())
}

func TestSession_ReplacesInvalidID(t *testing.T) {
	router := sessionRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-Session-ID", "not-a-uuid")
	router.ServeHTTP(w, req)

	sid := w.Body.String()
	assert.NotEqual(t, "not-a-uuid", sid)
	_, err := uuid.Parse(sid)
	assert.NoError(t, err)
}
