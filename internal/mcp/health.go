package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the JSON response from the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Origin    string `json:"origin"`
	Topics    int    `json:"topics"`
	Timestamp string `json:"timestamp"`
}

// OriginChecker reports whether the documentation origin is reachable.
// The fetcher implements this via its CheckOrigin method.
type OriginChecker interface {
	CheckOrigin(ctx context.Context) error
}

// NewHealthHandler creates an HTTP handler for the /health endpoint.
// Origin reachability is informational only: the server stays healthy
// with the origin down because every topic has a bundled fallback.
func NewHealthHandler(checker OriginChecker, topicCount int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		response := HealthResponse{
			Status:    "healthy",
			Origin:    "connected",
			Topics:    topicCount,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		if err := checker.CheckOrigin(ctx); err != nil {
			response.Origin = "unreachable"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}
}
