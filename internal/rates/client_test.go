package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		w.Write([]byte(`{"Date": "2026-03-02T11:30:00+03:00", "Valute": {"USD": {"Value": 90.4856, "Nominal": 1}, "EUR": {"Value": 98.12}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.now = func() time.Time { return time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC) }

	rate, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 90.4856, rate.Value)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), rate.Date)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC), rate.FetchedAt)
}

func TestClient_FetchMissingUSD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Valute": {"EUR": {"Value": 98.12}}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "USD")
}

func TestClient_FetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestClient_FetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_FetchNonPositiveValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Valute": {"USD": {"Value": 0}}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestClient_FetchUnreachableProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestClient_FetchCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).Fetch(ctx)
	assert.Error(t, err)
}
