package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name string `json:"name"`
}

func (r *testRequest) Validate() []string {
	if r.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

func decodeTo(t *testing.T, body string, dest any) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	ok := DecodeAndValidate(rr, req, dest)
	return rr, ok
}

func TestDecodeAndValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		var dst testRequest
		_, ok := decodeTo(t, `{"name":"x"}`, &dst)
		require.True(t, ok)
		assert.Equal(t, "x", dst.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		var dst testRequest
		rr, ok := decodeTo(t, `{oops`, &dst)
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		var dst testRequest
		rr, ok := decodeTo(t, `{"name":"x","extra":1}`, &dst)
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "extra")
	})

	t.Run("validation failure", func(t *testing.T) {
		var dst testRequest
		rr, ok := decodeTo(t, `{}`, &dst)
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var envelope APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, ErrCodeBadRequest, envelope.Error.Code)
		assert.Contains(t, envelope.Error.Message, "name is required")
	})
}
