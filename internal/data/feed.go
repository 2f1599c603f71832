package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hotel-correlation/internal/model"
)

// FeedClient fetches event records from a remote listings feed (the
// tijuanaeventos.com export endpoint or anything serving the same JSON
// array shape).
type FeedClient struct {
	BaseURL string
	Client  *http.Client
}

// FeedError carries the HTTP status of a failed feed request so
// callers can distinguish rate limiting from a broken feed.
type FeedError struct {
	StatusCode int
	Message    string
	RetryAfter string
}

func (e *FeedError) Error() string {
	return e.Message
}

func NewFeedClient(baseURL string) *FeedClient {
	return &FeedClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchEvents downloads the events published between the two dates
// (inclusive).
func (c *FeedClient) FetchEvents(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("feed URL is not configured")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed URL: %w", err)
	}
	q := u.Query()
	q.Set("desde", start.Format(model.DateLayout))
	q.Set("hasta", end.Format(model.DateLayout))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &FeedError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("feed returned %d: %s", resp.StatusCode, string(body)),
			RetryAfter: resp.Header.Get("Retry-After"),
		}
	}

	var events []model.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decoding feed response: %w", err)
	}
	return events, nil
}
