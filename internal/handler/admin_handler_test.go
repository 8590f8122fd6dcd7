package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrigger struct {
	calls int
	err   error
}

func (f *fakeTrigger) RunOnce(_ context.Context) error {
	f.calls++
	return f.err
}

func adminRouter(rateRefresh, pricingSweep Trigger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAdminHandler(rateRefresh, pricingSweep)
	router.POST("/api/v1/tasks/refresh-rate", h.RefreshRate)
	router.POST("/api/v1/tasks/recalculate-costs", h.RecalculateCosts)
	return router
}

func TestAdminHandler_RefreshRate(t *testing.T) {
	refresh := &fakeTrigger{}
	router := adminRouter(refresh, &fakeTrigger{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/tasks/refresh-rate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, refresh.calls)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp["status"])
}

func TestAdminHandler_RecalculateCosts(t *testing.T) {
	sweep := &fakeTrigger{}
	router := adminRouter(&fakeTrigger{}, sweep)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/tasks/recalculate-costs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, sweep.calls)
}

// Only non-recovered errors surface; the one-shot tasks swallow transient
// failures internally, so an error here means the run could not happen.
func TestAdminHandler_FatalErrorReturns500(t *testing.T) {
	router := adminRouter(&fakeTrigger{err: errors.New("shutting down")}, &fakeTrigger{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/tasks/refresh-rate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
