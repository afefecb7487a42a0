// Package pricing fetches current midpoint prices for outcome tokens from
// the pricing service (the Polymarket CLOB API or anything wire-compatible
// with it).
package pricing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/updownlabs/updown-resolver/pkg/types"
	"go.uber.org/zap"
)

// Client is an HTTP client for the pricing service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Config holds pricing client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewClient creates a new pricing client.
func NewClient(cfg *Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: cfg.Logger,
	}
}

// midpointRequest is one entry of the batch midpoint request body.
type midpointRequest struct {
	TokenID string `json:"token_id"`
}

// Midpoints fetches midpoint prices for several tokens in one call.
// The response maps token id to a decimal-string price; tokens the service
// does not know are simply absent from the map.
func (c *Client) Midpoints(ctx context.Context, tokenIDs []string) (map[string]string, error) {
	payload := make([]midpointRequest, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		payload = append(payload, midpointRequest{TokenID: id})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.baseURL + "/midpoints"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	BatchCallsTotal.Inc()

	respBody, err := c.do(req, "midpoints")
	if err != nil {
		return nil, err
	}

	var prices map[string]string
	err = json.Unmarshal(respBody, &prices)
	if err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	c.logger.Debug("batch-midpoints-fetched",
		zap.Int("requested", len(tokenIDs)),
		zap.Int("returned", len(prices)))

	return prices, nil
}

// Midpoint fetches the midpoint price for a single token.
func (c *Client) Midpoint(ctx context.Context, tokenID string) (string, error) {
	endpoint := fmt.Sprintf("%s/midpoint?token_id=%s", c.baseURL, tokenID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	SingleCallsTotal.Inc()

	respBody, err := c.do(req, "midpoint")
	if err != nil {
		return "", err
	}

	var data struct {
		Mid string `json:"mid"`
	}
	err = json.Unmarshal(respBody, &data)
	if err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return data.Mid, nil
}

func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		ErrorsTotal.Inc()
		return nil, &types.UpstreamError{Service: "pricing", Op: op, Err: err}
	}
	defer resp.Body.Close()
	RequestDurationSeconds.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		ErrorsTotal.Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, &types.UpstreamError{
			Service:    "pricing",
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ErrorsTotal.Inc()
		return nil, &types.UpstreamError{Service: "pricing", Op: op, Err: err}
	}

	return body, nil
}
