// Package discovery is the HTTP client for the market discovery service
// (the Polymarket Gamma API or anything wire-compatible with it).
package discovery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/updownlabs/updown-resolver/pkg/types"
	"go.uber.org/zap"
)

// Client is an HTTP client for the discovery service.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	searchLimit int
	logger      *zap.Logger
}

// Config holds discovery client configuration.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	SearchLimit int
	Logger      *zap.Logger
}

// NewClient creates a new discovery client.
func NewClient(cfg *Config) *Client {
	limit := cfg.SearchLimit
	if limit <= 0 {
		limit = 20
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		searchLimit: limit,
		logger:      cfg.Logger,
	}
}

// GetMarketBySlug fetches a single market by its slug.
// A missing market returns types.ErrNotFound: an absent slug is a normal
// outcome during window rotation, not an exceptional one.
func (c *Client) GetMarketBySlug(ctx context.Context, slug string) (*types.Market, error) {
	params := url.Values{}
	params.Set("slug", slug)

	markets, err := c.fetchMarkets(ctx, "get-by-slug", params)
	if err != nil {
		return nil, err
	}

	if len(markets) == 0 {
		MissesTotal.Inc()
		return nil, fmt.Errorf("slug %q: %w", slug, types.ErrNotFound)
	}

	return &markets[0], nil
}

// SearchMarkets runs a full-text query against the discovery service and
// returns the batch of loosely related records it yields.
func (c *Client) SearchMarkets(ctx context.Context, query string) ([]types.Market, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(c.searchLimit))
	params.Set("active", "true")
	params.Set("closed", "false")

	SearchesTotal.Inc()

	return c.fetchMarkets(ctx, "search", params)
}

// fetchMarkets issues a GET against /markets and decodes the result array.
func (c *Client) fetchMarkets(ctx context.Context, op string, params url.Values) ([]types.Market, error) {
	requestURL := fmt.Sprintf("%s/markets?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "updown-resolver/1.0")

	c.logger.Debug("discovery-request",
		zap.String("op", op),
		zap.String("url", requestURL))

	LookupsTotal.Inc()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		ErrorsTotal.Inc()
		return nil, &types.UpstreamError{Service: "discovery", Op: op, Err: err}
	}
	defer resp.Body.Close()
	RequestDurationSeconds.Observe(time.Since(start).Seconds())

	if resp.StatusCode == http.StatusNotFound {
		MissesTotal.Inc()
		return nil, fmt.Errorf("%s: %w", op, types.ErrNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		ErrorsTotal.Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, &types.UpstreamError{
			Service:    "discovery",
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ErrorsTotal.Inc()
		return nil, &types.UpstreamError{Service: "discovery", Op: op, Err: err}
	}

	// The Gamma API returns a direct array, not wrapped in an object.
	var markets []types.Market
	err = json.Unmarshal(body, &markets)
	if err != nil {
		ErrorsTotal.Inc()
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	c.logger.Debug("discovery-response",
		zap.String("op", op),
		zap.Int("count", len(markets)))

	return markets, nil
}
