package bakery

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/model"
)

// TooManyRequestsError represents a rate limiting signal from the platform.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// APIError carries the platform's error envelope for a failed call.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bakery platform error %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// Client exposes the bakery platform operations the storefront consumes.
type Client interface {
	Catalog(ctx context.Context, bakeryID string) (*model.Catalog, error)
	Location(ctx context.Context, bakeryID string) (model.Coordinates, error)

	Cart(ctx context.Context, token string) (*model.Cart, error)
	ReplaceLines(ctx context.Context, token, bakeryID string, lines []model.CartLine) error

	Create(ctx context.Context, token string, order *model.Order) (*model.Order, error)
	MoveToNext(ctx context.Context, token, orderID string) error
	Cancel(ctx context.Context, token, orderID string) error
	Get(ctx context.Context, token, orderID string) (*model.Order, error)
	List(ctx context.Context, token string) ([]model.Order, error)

	BakeryVouchers(ctx context.Context, bakeryID string) ([]model.Voucher, error)
	CustomerVouchers(ctx context.Context, token string) ([]model.Voucher, error)

	Profile(ctx context.Context, token, customerID string) (*model.Customer, error)

	CreateCustomCake(ctx context.Context, token, bakeryID string, submission *model.Submission, config model.CakeConfig) (string, error)
	Upload(ctx context.Context, token, filename string, data []byte) (string, error)
	SubmitReview(ctx context.Context, token, orderID string, rating int, comment string) error
	SubmitReport(ctx context.Context, token, orderID, reason string, imageRefs []string) error
}

// HTTPClient implements Client against the platform's JSON API. All responses
// use the conventional status_code/errors[]/payload envelope.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Errors     []string        `json:"errors"`
	Payload    json.RawMessage `json:"payload"`
}

// NewHTTPClient creates the platform client with the given request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse bakery url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("bakery url must be absolute")
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

func (c *HTTPClient) do(ctx context.Context, method, apiPath, token string, body, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, apiPath)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domainErrors.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return domainErrors.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Error("bakery response malformed", slog.Int("status", resp.StatusCode), slog.String("path", apiPath))
		return fmt.Errorf("decode bakery response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || len(env.Errors) > 0 {
		c.logger.Error("bakery request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("path", apiPath),
			slog.Any("errors", env.Errors),
		)
		return &APIError{StatusCode: resp.StatusCode, Messages: env.Errors}
	}

	if out != nil {
		if err := json.Unmarshal(env.Payload, out); err != nil {
			return fmt.Errorf("decode bakery payload: %w", err)
		}
	}
	return nil
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}

// Catalog fetches the bakery's option catalog.
func (c *HTTPClient) Catalog(ctx context.Context, bakeryID string) (*model.Catalog, error) {
	var catalog model.Catalog
	if err := c.do(ctx, http.MethodGet, "/api/bakeries/"+bakeryID+"/catalog", "", nil, &catalog); err != nil {
		return nil, err
	}
	catalog.BakeryID = bakeryID
	return &catalog, nil
}

// Location fetches the bakery store coordinates.
func (c *HTTPClient) Location(ctx context.Context, bakeryID string) (model.Coordinates, error) {
	var payload struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/bakeries/"+bakeryID, "", nil, &payload); err != nil {
		return model.Coordinates{}, err
	}
	return model.Coordinates{Latitude: payload.Latitude, Longitude: payload.Longitude}, nil
}

// Cart fetches the customer's current cart.
func (c *HTTPClient) Cart(ctx context.Context, token string) (*model.Cart, error) {
	var cart model.Cart
	if err := c.do(ctx, http.MethodGet, "/api/carts", token, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// ReplaceLines replaces the cart content wholesale.
func (c *HTTPClient) ReplaceLines(ctx context.Context, token, bakeryID string, lines []model.CartLine) error {
	body := struct {
		BakeryID string           `json:"bakery_id"`
		Lines    []model.CartLine `json:"lines"`
	}{BakeryID: bakeryID, Lines: lines}
	return c.do(ctx, http.MethodPut, "/api/carts", token, body, nil)
}

// Create submits an order-creation request.
func (c *HTTPClient) Create(ctx context.Context, token string, order *model.Order) (*model.Order, error) {
	var created model.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", token, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// MoveToNext advances an order to its next state.
func (c *HTTPClient) MoveToNext(ctx context.Context, token, orderID string) error {
	return c.do(ctx, http.MethodPut, "/api/orders/"+orderID+"/move-to-next", token, nil, nil)
}

// Cancel cancels an order.
func (c *HTTPClient) Cancel(ctx context.Context, token, orderID string) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/"+orderID+"/cancel", token, nil, nil)
}

// Get fetches one order.
func (c *HTTPClient) Get(ctx context.Context, token, orderID string) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+orderID, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List fetches the customer's orders.
func (c *HTTPClient) List(ctx context.Context, token string) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// BakeryVouchers fetches bakery-wide vouchers.
func (c *HTTPClient) BakeryVouchers(ctx context.Context, bakeryID string) ([]model.Voucher, error) {
	var vouchers []model.Voucher
	if err := c.do(ctx, http.MethodGet, "/api/bakeries/"+bakeryID+"/vouchers", "", nil, &vouchers); err != nil {
		return nil, err
	}
	return vouchers, nil
}

// CustomerVouchers fetches vouchers granted to the customer.
func (c *HTTPClient) CustomerVouchers(ctx context.Context, token string) ([]model.Voucher, error) {
	var vouchers []model.Voucher
	if err := c.do(ctx, http.MethodGet, "/api/customers/vouchers", token, nil, &vouchers); err != nil {
		return nil, err
	}
	return vouchers, nil
}

// Profile fetches a customer profile.
func (c *HTTPClient) Profile(ctx context.Context, token, customerID string) (*model.Customer, error) {
	var customer model.Customer
	if err := c.do(ctx, http.MethodGet, "/api/customers/"+customerID, token, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomCake registers a materialized configuration as a custom cake and
// returns its id.
func (c *HTTPClient) CreateCustomCake(ctx context.Context, token, bakeryID string, submission *model.Submission, config model.CakeConfig) (string, error) {
	body := struct {
		BakeryID   string            `json:"bakery_id"`
		Submission *model.Submission `json:"submission"`
		Config     model.CakeConfig  `json:"config"`
	}{BakeryID: bakeryID, Submission: submission, Config: config}

	var payload struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/custom-cakes", token, body, &payload); err != nil {
		return "", err
	}
	return payload.ID, nil
}

// Upload stores a file and returns its reference.
func (c *HTTPClient) Upload(ctx context.Context, token, filename string, data []byte) (string, error) {
	body := struct {
		FileName string `json:"file_name"`
		Content  string `json:"content"`
	}{FileName: filename, Content: base64.StdEncoding.EncodeToString(data)}

	var payload struct {
		Ref string `json:"ref"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/files", token, body, &payload); err != nil {
		return "", err
	}
	return payload.Ref, nil
}

// SubmitReview posts an order review.
func (c *HTTPClient) SubmitReview(ctx context.Context, token, orderID string, rating int, comment string) error {
	body := struct {
		OrderID string `json:"order_id"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}{OrderID: orderID, Rating: rating, Comment: comment}
	return c.do(ctx, http.MethodPost, "/api/reviews", token, body, nil)
}

// SubmitReport posts a store report.
func (c *HTTPClient) SubmitReport(ctx context.Context, token, orderID, reason string, imageRefs []string) error {
	body := struct {
		OrderID   string   `json:"order_id"`
		Reason    string   `json:"reason"`
		ImageRefs []string `json:"image_refs,omitempty"`
	}{OrderID: orderID, Reason: reason, ImageRefs: imageRefs}
	return c.do(ctx, http.MethodPost, "/api/reports", token, body, nil)
}

var _ Client = (*HTTPClient)(nil)
