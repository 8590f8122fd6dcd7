package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_NoDeps(t *testing.T) {
	// Without real connections we test the handler structure.
	// Full integration runs with Docker.
	h := NewHealthHandler(nil, nil)
	assert.NotNil(t, h)
}

func TestHealthResponse_Structure(t *testing.T) {
	type healthResponse struct {
		Status   string `json:"status"`
		Database string `json:"database"`
		Cache    string `json:"cache"`
	}

	body := `{"status":"healthy","database":"connected","cache":"connected"}`
	var resp healthResponse
	err := json.Unmarshal([]byte(body), &resp)
	require.NoError(t, err)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "connected", resp.Database)
	assert.Equal(t, "connected", resp.Cache)
}
