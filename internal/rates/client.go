package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"parceldesk/internal/model"
)

const fetchTimeout = 30 * time.Second

// Client fetches the daily USD quote from the rate provider. The payload is
// treated as opaque beyond the one nested numeric field:
//
//	{"Valute": {"USD": {"Value": 90.5}}}
type Client struct {
	url  string
	http *http.Client
	now  func() time.Time
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: fetchTimeout},
		now:  time.Now,
	}
}

type providerResponse struct {
	Valute map[string]struct {
		Value float64 `json:"Value"`
	} `json:"Valute"`
}

func (c *Client) Fetch(ctx context.Context) (model.ExchangeRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return model.ExchangeRate{}, fmt.Errorf("build rate request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.ExchangeRate{}, fmt.Errorf("fetch usd rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.ExchangeRate{}, fmt.Errorf("fetch usd rate: unexpected status %d", resp.StatusCode)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.ExchangeRate{}, fmt.Errorf("decode rate response: %w", err)
	}

	usd, ok := payload.Valute["USD"]
	if !ok {
		return model.ExchangeRate{}, fmt.Errorf("rate response has no USD quote")
	}
	if usd.Value <= 0 {
		return model.ExchangeRate{}, fmt.Errorf("rate response has non-positive USD value %v", usd.Value)
	}

	now := c.now().UTC()
	return model.ExchangeRate{
		Value:     usd.Value,
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		FetchedAt: now,
	}, nil
}
