// ABOUTME: RescueTime daily summary feed client.
// ABOUTME: Returns per-day productive/distracting/neutral hours for the last two weeks.
package rescuetime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/samber/lo"

	"github.com/cbatts/codexvitae/internal/models"
)

const defaultBaseURL = "https://www.rescuetime.com"

// Client fetches the daily summary feed. The feed covers roughly the past
// two weeks; recurring runs overlap, which the date-keyed upsert absorbs.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
}

// NewClient builds a client with the given API key.
func NewClient(key string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		key:        key,
	}
}

// NewClientWithBase builds a client against a custom endpoint. Used by tests.
func NewClientWithBase(httpClient *http.Client, baseURL, key string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL, key: key}
}

type dailySummary struct {
	Date                string  `json:"date"`
	AllProductiveHours  float64 `json:"all_productive_hours"`
	AllDistractingHours float64 `json:"all_distracting_hours"`
	NeutralHours        float64 `json:"neutral_hours"`
}

// DailySummary returns one TimeEntry per day in the feed.
func (c *Client) DailySummary(ctx context.Context) ([]models.TimeEntry, error) {
	endpoint := fmt.Sprintf("%s/anapi/daily_summary_feed?key=%s", c.baseURL, url.QueryEscape(c.key))

	var feed []dailySummary
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			return json.NewDecoder(resp.Body).Decode(&feed)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("rescuetime daily summary: %w", err)
	}

	return lo.Map(feed, func(d dailySummary, _ int) models.TimeEntry {
		return models.TimeEntry{
			Date:        d.Date,
			Productive:  d.AllProductiveHours,
			Distracting: d.AllDistractingHours,
			Neutral:     d.NeutralHours,
		}
	}), nil
}
