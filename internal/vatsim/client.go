package vatsim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yegors/vatscope/pkg/logger"
)

const datafeedCacheKey = "datafeed"

// Client fetches VATSIM network data over HTTP. The datafeed is cached for a
// short configurable interval so bursts of lookups share one fetch.
type Client struct {
	datafeedURL   string
	staticDataURL string
	boundariesURL string
	httpClient    *http.Client
	feedCache     *expirable.LRU[string, *Datafeed]
	logger        *logger.Logger
}

// NewClient creates a new VATSIM client.
func NewClient(datafeedURL, staticDataURL, boundariesURL string, timeout, feedCacheTTL time.Duration, logger *logger.Logger) *Client {
	return &Client{
		datafeedURL:   datafeedURL,
		staticDataURL: staticDataURL,
		boundariesURL: boundariesURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		feedCache: expirable.NewLRU[string, *Datafeed](1, nil, feedCacheTTL),
		logger:    logger.Named("vatsim-client"),
	}
}

// get executes a GET request and returns the response body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain")

	c.logger.Debug("Fetching", logger.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// FetchStaticData fetches the raw static reference dataset text. Implements
// navdata.Source.
func (c *Client) FetchStaticData(ctx context.Context) (string, error) {
	body, err := c.get(ctx, c.staticDataURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch static data: %w", err)
	}
	return string(body), nil
}

// FetchBoundaries fetches the raw FIR boundary GeoJSON payload.
func (c *Client) FetchBoundaries(ctx context.Context) ([]byte, error) {
	body, err := c.get(ctx, c.boundariesURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boundaries: %w", err)
	}
	return body, nil
}

// FetchDatafeed returns the live datafeed, serving a cached copy while it is
// still fresh.
func (c *Client) FetchDatafeed(ctx context.Context) (*Datafeed, error) {
	if feed, ok := c.feedCache.Get(datafeedCacheKey); ok {
		return feed, nil
	}

	body, err := c.get(ctx, c.datafeedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch datafeed: %w", err)
	}

	var feed Datafeed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to parse datafeed JSON: %w", err)
	}

	c.feedCache.Add(datafeedCacheKey, &feed)

	c.logger.Debug("Datafeed updated",
		logger.Int("pilots", len(feed.Pilots)),
		logger.Time("feed_time", feed.General.UpdateTimestamp),
	)

	return &feed, nil
}

// FindPilot returns the connected pilot with the given callsign
// (case-insensitive exact match), or nil when not connected.
func (c *Client) FindPilot(ctx context.Context, callsign string) (*Pilot, error) {
	feed, err := c.FetchDatafeed(ctx)
	if err != nil {
		return nil, err
	}

	want := strings.ToUpper(strings.TrimSpace(callsign))
	for i := range feed.Pilots {
		if strings.ToUpper(feed.Pilots[i].Callsign) == want {
			return &feed.Pilots[i], nil
		}
	}
	return nil, nil
}
