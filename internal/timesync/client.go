package timesync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/updownlabs/updown-resolver/pkg/cache"
	"github.com/updownlabs/updown-resolver/pkg/types"
	"go.uber.org/zap"
)

// millisThreshold separates second-magnitude from millisecond-magnitude
// epoch values. Anything above it is treated as milliseconds.
const millisThreshold = 1e12

const offsetCacheKey = "timesync:offset"

// RemoteClock measures the (server - local) clock offset against a remote
// time service and applies it to the local clock. The measured offset is
// cached with a TTL so most resolutions need no network round trip; any
// fetch error degrades silently to the local clock.
type RemoteClock struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	ttl        time.Duration
	logger     *zap.Logger
}

// Config holds remote clock configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Cache   cache.Cache
	TTL     time.Duration
	Logger  *zap.Logger
}

// NewRemoteClock creates a remote-synced clock.
func NewRemoteClock(cfg *Config) *RemoteClock {
	return &RemoteClock{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache:  cfg.Cache,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
	}
}

// Now returns the canonical now in epoch seconds: local time plus the
// cached or freshly measured server offset. Falls back to plain local time
// when the time service is unreachable.
func (c *RemoteClock) Now(ctx context.Context) int64 {
	local := time.Now().Unix()

	if offset, ok := c.cachedOffset(); ok {
		return local + offset
	}

	serverNow, err := c.fetchServerTime(ctx)
	if err != nil {
		SyncErrorsTotal.Inc()
		c.logger.Warn("time-sync-failed-using-local-clock", zap.Error(err))
		return local
	}

	offset := serverNow - local
	if c.cache != nil {
		c.cache.Set(offsetCacheKey, offset, c.ttl)
	}

	c.logger.Debug("time-sync-complete",
		zap.Int64("server-now", serverNow),
		zap.Int64("offset-seconds", offset))

	return local + offset
}

func (c *RemoteClock) cachedOffset() (int64, bool) {
	if c.cache == nil {
		return 0, false
	}

	value, found := c.cache.Get(offsetCacheKey)
	if !found {
		return 0, false
	}

	offset, ok := value.(int64)
	return offset, ok
}

// fetchServerTime calls the time service and normalizes the reported value
// to epoch seconds. The response may be a bare number or an object with a
// serverTime field, in seconds or milliseconds; magnitude decides which.
func (c *RemoteClock) fetchServerTime(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &types.UpstreamError{Service: "timesync", Op: "get-time", Err: err}
	}
	defer resp.Body.Close()
	SyncDurationSeconds.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, &types.UpstreamError{
			Service:    "timesync",
			Op:         "get-time",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response body: %w", err)
	}

	raw, err := parseServerTime(body)
	if err != nil {
		return 0, fmt.Errorf("parse server time: %w", err)
	}

	return NormalizeSeconds(raw), nil
}

// parseServerTime accepts a bare number, a quoted number, or an object with
// a serverTime field.
func parseServerTime(body []byte) (float64, error) {
	trimmed := strings.TrimSpace(string(body))

	if v, err := strconv.ParseFloat(strings.Trim(trimmed, `"`), 64); err == nil {
		return v, nil
	}

	var wrapped struct {
		ServerTime float64 `json:"serverTime"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return 0, err
	}
	if wrapped.ServerTime == 0 {
		return 0, fmt.Errorf("no usable time field in %q", trimmed)
	}

	return wrapped.ServerTime, nil
}

// NormalizeSeconds converts a reported epoch value to seconds. Values above
// the millisecond threshold are divided by 1000.
func NormalizeSeconds(v float64) int64 {
	if v > millisThreshold {
		return int64(v / 1000)
	}
	return int64(v)
}
