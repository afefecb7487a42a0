// Package testutil provides mock upstream services and market fixtures
// shared by tests across the repository.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/updownlabs/updown-resolver/pkg/types"
)

// MockGammaAPI is a mock HTTP server that simulates the discovery service.
// Lookups match on the slug query parameter; searches match any market
// whose question or slug contains every word of the query.
type MockGammaAPI struct {
	*httptest.Server
	Markets  []*types.Market
	FailNext bool // next request returns a 500
	mu       sync.RWMutex
}

// NewMockGammaAPI creates a new mock discovery server.
func NewMockGammaAPI(markets []*types.Market) *MockGammaAPI {
	mock := &MockGammaAPI{
		Markets: markets,
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		fail := mock.FailNext
		mock.FailNext = false
		mock.mu.Unlock()

		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("internal server error"))
			return
		}

		if r.URL.Path != "/markets" {
			http.NotFound(w, r)
			return
		}

		mock.mu.RLock()
		defer mock.mu.RUnlock()

		// Discovery responses are direct arrays, not wrapped objects.
		w.Header().Set("Content-Type", "application/json")

		if slug := r.URL.Query().Get("slug"); slug != "" {
			matches := make([]*types.Market, 0, 1)
			for _, m := range mock.Markets {
				if m.Slug == slug {
					matches = append(matches, m)
				}
			}
			_ = json.NewEncoder(w).Encode(matches)
			return
		}

		if query := r.URL.Query().Get("q"); query != "" {
			matches := make([]*types.Market, 0)
			for _, m := range mock.Markets {
				if matchesQuery(m, query) {
					matches = append(matches, m)
				}
			}
			_ = json.NewEncoder(w).Encode(matches)
			return
		}

		_ = json.NewEncoder(w).Encode(mock.Markets)
	})

	mock.Server = httptest.NewServer(handler)
	return mock
}

func matchesQuery(m *types.Market, query string) bool {
	text := strings.ToLower(m.Question + " " + m.Slug)
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(text, word) {
			return false
		}
	}
	return true
}

// AddMarket adds a market to the mock API.
func (m *MockGammaAPI) AddMarket(market *types.Market) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Markets = append(m.Markets, market)
}

// FailOnce makes the next request fail with a 500.
func (m *MockGammaAPI) FailOnce() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailNext = true
}

// MockClobAPI is a mock HTTP server that simulates the pricing service.
// Prices maps token id to a decimal-string midpoint.
type MockClobAPI struct {
	*httptest.Server
	Prices    map[string]string
	FailBatch bool // batch endpoint returns a 500
	mu        sync.RWMutex
}

// NewMockClobAPI creates a new mock pricing server.
func NewMockClobAPI(prices map[string]string) *MockClobAPI {
	mock := &MockClobAPI{
		Prices: prices,
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.RLock()
		defer mock.mu.RUnlock()

		switch r.URL.Path {
		case "/midpoints":
			if mock.FailBatch {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("internal server error"))
				return
			}

			var reqs []struct {
				TokenID string `json:"token_id"`
			}
			_ = json.NewDecoder(r.Body).Decode(&reqs)

			out := make(map[string]string)
			for _, req := range reqs {
				if price, ok := mock.Prices[req.TokenID]; ok {
					out[req.TokenID] = price
				}
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(out)

		case "/midpoint":
			tokenID := r.URL.Query().Get("token_id")
			price, ok := mock.Prices[tokenID]
			if !ok {
				http.NotFound(w, r)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"mid": price})

		default:
			http.NotFound(w, r)
		}
	})

	mock.Server = httptest.NewServer(handler)
	return mock
}

// SetFailBatch toggles 500 responses on the batch endpoint.
func (m *MockClobAPI) SetFailBatch(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailBatch = fail
}

// RemovePrice deletes a token's price, simulating partial batch data.
func (m *MockClobAPI) RemovePrice(tokenID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Prices, tokenID)
}
