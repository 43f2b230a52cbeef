package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOriginChecker struct {
	err error
}

func (f *fakeOriginChecker) CheckOrigin(ctx context.Context) error {
	return f.err
}

func TestHealthHandler_OriginConnected(t *testing.T) {
	handler := NewHealthHandler(&fakeOriginChecker{}, 7)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "connected", resp.Origin)
	assert.Equal(t, 7, resp.Topics)
	assert.NotEmpty(t, resp.Timestamp)
}

// TestHealthHandler_OriginDown: an unreachable origin degrades the origin
// field only; the server still reports healthy because every topic has a
// bundled fallback.
func TestHealthHandler_OriginDown(t *testing.T) {
	handler := NewHealthHandler(&fakeOriginChecker{err: errors.New("dial tcp: timeout")}, 7)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "unreachable", resp.Origin)
}

func TestLandingHandler(t *testing.T) {
	handler := NewLandingHandler()

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "zkVerify Docs MCP Server")

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
