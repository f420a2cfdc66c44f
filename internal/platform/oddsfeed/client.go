// Package oddsfeed is the REST client for the upstream kvotizza backend that
// serves per-match bookmaker offers. The network timeout for offer fetches is
// owned here; the engine itself never blocks.
package oddsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

// Config holds the feed endpoint parameters.
type Config struct {
	BaseURL string
	APIKey  string // optional; sent as X-API-Key when set
	Timeout time.Duration
}

// Client is the HTTP client for the odds feed.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a feed client. baseURL is the API root, e.g.
// "https://api.kvotizza.rs". A zero timeout defaults to 10 seconds.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// MatchOffer fetches the full per-bookmaker offer for one match.
// It returns domain.ErrNotFound when the backend does not know the match.
func (c *Client) MatchOffer(ctx context.Context, matchID int) (domain.MatchOffer, error) {
	url := fmt.Sprintf("%s/api/matches/%d/offer", c.baseURL, matchID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.MatchOffer{}, fmt.Errorf("oddsfeed: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.MatchOffer{}, fmt.Errorf("oddsfeed: get match %d: %w: %w", matchID, domain.ErrFeedUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.MatchOffer{}, fmt.Errorf("oddsfeed: match %d: %w", matchID, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.MatchOffer{}, fmt.Errorf("oddsfeed: match %d: unexpected status %d: %s", matchID, resp.StatusCode, body)
	}

	var payload matchOfferPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.MatchOffer{}, fmt.Errorf("oddsfeed: decode match %d: %w", matchID, err)
	}

	return payload.toDomain(matchID), nil
}
