package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/updownlabs/updown-resolver/internal/resolver"
	"github.com/updownlabs/updown-resolver/pkg/types"
	"go.uber.org/zap"
)

// ResolveHandler handles HTTP resolution requests.
type ResolveHandler struct {
	resolver *resolver.Resolver
	logger   *zap.Logger
}

// NewResolveHandler creates a new resolve handler.
func NewResolveHandler(res *resolver.Resolver, logger *zap.Logger) *ResolveHandler {
	return &ResolveHandler{
		resolver: res,
		logger:   logger,
	}
}

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleResolve handles GET /api/resolve?asset=<symbol>&interval=<label>.
// Configuration errors (unknown asset or interval) are 400s; an exhausted
// candidate list is a 200 with found=false, because upstream indexing lag
// is an expected outcome the caller must be able to explain.
func (h *ResolveHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	asset := r.URL.Query().Get("asset")
	if asset == "" {
		h.writeError(w, "missing required query parameter: asset", http.StatusBadRequest)
		return
	}

	interval := r.URL.Query().Get("interval")
	if interval == "" {
		h.writeError(w, "missing required query parameter: interval", http.StatusBadRequest)
		return
	}

	h.logger.Debug("resolve-request-received",
		zap.String("asset", asset),
		zap.String("interval", interval))

	result, err := h.resolver.Resolve(r.Context(), asset, interval)
	if err != nil {
		if errors.Is(err, types.ErrUnknownAsset) || errors.Is(err, types.ErrUnknownInterval) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}

		h.logger.Error("resolve-request-failed", zap.Error(err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(result)
	if err != nil {
		h.logger.Error("write-response-failed", zap.Error(err))
	}
}

// writeError writes a JSON error response.
func (h *ResolveHandler) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
