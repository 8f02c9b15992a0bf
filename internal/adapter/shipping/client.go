package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sugarline/cakeshop/internal/domain/model"
)

// durationUnitThreshold splits the shipping service's unitless duration
// number: values below it are hours, everything else minutes. The service does
// not report a unit; this heuristic is kept for compatibility and is known to
// be fragile around the boundary.
const durationUnitThreshold = 10

// Client quotes shipping between two coordinates.
type Client interface {
	Quote(ctx context.Context, from, to model.Coordinates) (*model.ShippingQuote, error)
}

// HTTPClient implements Client against the shipping service.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates the shipping client.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse shipping url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("shipping url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    parsed,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Quote fetches fee, distance and estimated duration for a route.
func (c *HTTPClient) Quote(ctx context.Context, from, to model.Coordinates) (*model.ShippingQuote, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/shipping/quote")
	query := url.Values{
		"from_lat": {strconv.FormatFloat(from.Latitude, 'f', -1, 64)},
		"from_lng": {strconv.FormatFloat(from.Longitude, 'f', -1, 64)},
		"to_lat":   {strconv.FormatFloat(to.Latitude, 'f', -1, 64)},
		"to_lng":   {strconv.FormatFloat(to.Longitude, 'f', -1, 64)},
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("shipping request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("shipping error: %s", resp.Status)
	}

	var payload struct {
		Fee        decimal.Decimal `json:"shipping_fee"`
		DistanceKm float64         `json:"distance"`
		Duration   float64         `json:"duration"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	return &model.ShippingQuote{
		Fee:        payload.Fee,
		DistanceKm: payload.DistanceKm,
		Duration:   normalizeDuration(payload.Duration),
	}, nil
}

func normalizeDuration(value float64) time.Duration {
	if value < durationUnitThreshold {
		return time.Duration(value * float64(time.Hour))
	}
	return time.Duration(value * float64(time.Minute))
}

var _ Client = (*HTTPClient)(nil)
