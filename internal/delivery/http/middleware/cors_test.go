package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsRequest(t *testing.T, handler http.Handler, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "http://test/accept_invite", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_EmptyAllowListPermitsAnyOrigin(t *testing.T) {
	handler := CORS(nil, okHandler())
	rr := corsRequest(t, handler, http.MethodPost, "https://app.example.com")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_AllowList(t *testing.T) {
	handler := CORS([]string{"https://app.example.com/"}, okHandler())

	t.Run("listed origin", func(t *testing.T) {
		rr := corsRequest(t, handler, http.MethodPost, "https://app.example.com")
		assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin gets no headers but the request proceeds", func(t *testing.T) {
		rr := corsRequest(t, handler, http.MethodPost, "https://evil.example.com")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(nil, okHandler())
	rr := corsRequest(t, handler, http.MethodOptions, "https://app.example.com")

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "GET, POST, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Headers"))
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_NoOriginHeader(t *testing.T) {
	handler := CORS(nil, okHandler())
	rr := corsRequest(t, handler, http.MethodPost, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
