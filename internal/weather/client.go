package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/yegors/vatscope/pkg/logger"
)

// Client fetches METAR observations from the weather API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a new weather API client.
func NewClient(baseURL string, timeout time.Duration, logger *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("weather-client"),
	}
}

// FetchMETAR fetches and decodes the latest METAR for the given station.
// Returns (nil, nil) when the API has no observation for the station.
func (c *Client) FetchMETAR(ctx context.Context, icao string) (*Observation, error) {
	reqURL := fmt.Sprintf("%s/metar?ids=%s&format=json", c.baseURL, url.QueryEscape(icao))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Fetching METAR",
		logger.String("icao", icao),
		logger.String("url", reqURL),
	)

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

	var reports []metarResponse
	if err := json.Unmarshal(body, &reports); err != nil {
		return nil, fmt.Errorf("failed to parse METAR JSON: %w", err)
	}
	if len(reports) == 0 {
		c.logger.Debug("No METAR available", logger.String("icao", icao))
		return nil, nil
	}

	obs := reports[0].toObservation()
	return &obs, nil
}
