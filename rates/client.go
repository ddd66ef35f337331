// Package rates fetches USD-base conversion multipliers from the
// exchange-rate API and caches them in memory so the frontend never needs
// the API key. Stored amounts are never converted; multipliers apply at
// display time only.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// DefaultTTL is how long a fetched rate table is served before refreshing.
const DefaultTTL = time.Hour

// fallback mirrors the client-side defaults the app shipped with, used only
// when no fetch has ever succeeded.
var fallback = map[string]float64{
	"USD": 1,
	"IDR": 16250,
}

type apiResponse struct {
	Result          string             `json:"result"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// Client caches conversion rates from a v6 exchangerate-api endpoint.
type Client struct {
	url  string
	ttl  time.Duration
	http *http.Client

	mu        sync.Mutex
	rates     map[string]float64
	fetchedAt time.Time
}

// New builds a client for the given latest-rates URL (already including the
// API key). A zero ttl means DefaultTTL.
func New(url string, ttl time.Duration) *Client {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Client{
		url:  url,
		ttl:  ttl,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Rates returns the current multiplier table. A fresh cache is served as
// is; an expired one triggers a refetch, falling back to the stale table
// (or the built-in defaults) when the upstream call fails.
func (c *Client) Rates(ctx context.Context) map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rates != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.rates
	}

	fresh, err := c.fetch(ctx)
	if err != nil {
		log.Printf("rates: refresh failed: %v", err)
		if c.rates != nil {
			return c.rates // stale beats nothing
		}
		return fallback
	}
	c.rates = fresh
	c.fetchedAt = time.Now()
	return c.rates
}

func (c *Client) fetch(ctx context.Context) (map[string]float64, error) {
	if c.url == "" {
		return nil, fmt.Errorf("no exchange rate URL configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Result != "success" || len(body.ConversionRates) == 0 {
		return nil, fmt.Errorf("upstream result %q", body.Result)
	}
	return body.ConversionRates, nil
}
