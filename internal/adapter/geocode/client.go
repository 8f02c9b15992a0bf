package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/sugarline/cakeshop/internal/domain/model"
)

// ErrNoResults indicates the geocoder could not place the address.
var ErrNoResults = errors.New("no geocoding results")

// Client exposes the third-party geocoding operations used at checkout.
type Client interface {
	Forward(ctx context.Context, address string) (model.Coordinates, error)
	Autocomplete(ctx context.Context, query string) ([]string, error)
}

// HTTPClient implements Client against the geocoding provider's JSON API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates the geocoding client. The timeout bounds every lookup
// so a slow provider surfaces as a failure instead of an indefinite spinner.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse geocoder url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("geocoder url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    parsed,
		apiKey:     apiKey,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) get(ctx context.Context, apiPath string, query url.Values, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, apiPath)
	query.Set("api_key", c.apiKey)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("geocode request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("geocoder error: %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// Forward geocodes a free-text address to coordinates.
func (c *HTTPClient) Forward(ctx context.Context, address string) (model.Coordinates, error) {
	var payload struct {
		Results []struct {
			Latitude  float64 `json:"lat"`
			Longitude float64 `json:"lon"`
		} `json:"results"`
	}
	query := url.Values{"q": {address}}
	if err := c.get(ctx, "/v1/search", query, &payload); err != nil {
		return model.Coordinates{}, err
	}
	if len(payload.Results) == 0 {
		return model.Coordinates{}, ErrNoResults
	}
	return model.Coordinates{
		Latitude:  payload.Results[0].Latitude,
		Longitude: payload.Results[0].Longitude,
	}, nil
}

// Autocomplete returns address suggestions for a partial query.
func (c *HTTPClient) Autocomplete(ctx context.Context, query string) ([]string, error) {
	var payload struct {
		Results []struct {
			Formatted string `json:"formatted"`
		} `json:"results"`
	}
	if err := c.get(ctx, "/v1/autocomplete", url.Values{"q": {query}}, &payload); err != nil {
		return nil, err
	}
	suggestions := make([]string, 0, len(payload.Results))
	for _, r := range payload.Results {
		suggestions = append(suggestions, r.Formatted)
	}
	return suggestions, nil
}

var _ Client = (*HTTPClient)(nil)
