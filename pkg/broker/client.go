package broker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client is the surface of the brokerage trading API consumed by the
// command layer. Implementations wrap every failure with endpoint-specific
// context before returning it.
type Client interface {
	GetAccount(ctx context.Context) (*Account, error)
	CreateOrder(ctx context.Context, req *OrderRequest) (*Order, error)
	CancelOrder(ctx context.Context, id OrderID) error
	ListOrders(ctx context.Context, limit int) ([]Order, error)
}

// HTTPClient talks to the brokerage REST API.
type HTTPClient struct {
	client *resty.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the given API host. Credentials are
// passed on every request via the key/secret headers.
func NewHTTPClient(baseURL, keyID, secret string) (*HTTPClient, error) {
	u, err := url.ParseRequestURI(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid API base URL %q", baseURL)
	}

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(30*time.Second).
		SetHeader("APCA-API-KEY-ID", keyID).
		SetHeader("APCA-API-SECRET-KEY", secret).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return resp != nil && resp.StatusCode() == http.StatusTooManyRequests
		}).
		SetRetryAfter(func(client *resty.Client, resp *resty.Response) (time.Duration, error) {
			// Honor the Retry-After header on rate limits.
			if resp.StatusCode() == http.StatusTooManyRequests {
				if ra := resp.Header().Get("Retry-After"); ra != "" {
					if secs, err := strconv.Atoi(ra); err == nil {
						return time.Duration(secs) * time.Second, nil
					}
				}
				return 10 * time.Second, nil
			}
			return 0, nil
		})

	return &HTTPClient{client: client}, nil
}

// GetAccount fetches the account snapshot.
func (c *HTTPClient) GetAccount(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.do(ctx, http.MethodGet, EndpointAccount, nil, nil, &account); err != nil {
		return nil, errors.Wrap(err, "failed to retrieve account information")
	}
	return &account, nil
}

// CreateOrder submits a new order and returns it as recorded by the API.
func (c *HTTPClient) CreateOrder(ctx context.Context, req *OrderRequest) (*Order, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue POST request to order endpoint")
	}

	var order Order
	if err := c.do(ctx, http.MethodPost, EndpointOrders, nil, payload, &order); err != nil {
		return nil, errors.Wrap(err, "failed to submit order")
	}
	return &order, nil
}

// CancelOrder cancels the order with the given id.
func (c *HTTPClient) CancelOrder(ctx context.Context, id OrderID) error {
	endpoint := EndpointOrders + "/" + id.String()
	if err := c.do(ctx, http.MethodDelete, endpoint, nil, nil, nil); err != nil {
		return errors.Wrap(err, "failed to cancel order")
	}
	return nil
}

// ListOrders fetches up to limit currently open orders.
func (c *HTTPClient) ListOrders(ctx context.Context, limit int) ([]Order, error) {
	params := map[string]string{"limit": strconv.Itoa(limit)}

	var orders []Order
	if err := c.do(ctx, http.MethodGet, EndpointOrders, params, nil, &orders); err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	return orders, nil
}

// apiError is the error payload the API emits on non-2xx responses.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, params map[string]string, body []byte, out any) error {
	r := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if params != nil {
		r.SetQueryParams(params)
	}
	if body != nil {
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(body)
		logrus.WithFields(logrus.Fields{
			"method":   method,
			"endpoint": endpoint,
		}).Tracef("request body: %s", body)
	}
	if out != nil {
		r.SetResult(out)
	}

	start := time.Now()
	resp, err := r.Execute(method, endpoint)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": endpoint,
		"status":   resp.StatusCode(),
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Debug("brokerage request")

	if resp.IsError() {
		var apiErr apiError
		if jsonErr := json.Unmarshal(resp.Body(), &apiErr); jsonErr == nil && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return errors.Errorf("%s %s: %d %s", method, endpoint, resp.StatusCode(),
			strings.TrimSpace(string(resp.Body())))
	}
	return nil
}
