package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController(t *testing.T) {
	tests := []struct {
		name       string
		mockMode   bool
		call       func(c *HealthController, w http.ResponseWriter, r *http.Request)
		wantStatus string
	}{
		{"root", false, (*HealthController).Root, "ok"},
		{"root mock mode", true, (*HealthController).Root, "ok"},
		{"health", false, (*HealthController).Health, "healthy"},
		{"health mock mode", true, (*HealthController).Health, "healthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewHealthController(tt.mockMode)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			tt.call(ctrl, rr, req)

			require.Equal(t, http.StatusOK, rr.Code)

			var envelope struct {
				Data HealthResponse `json:"data"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			assert.Equal(t, tt.wantStatus, envelope.Data.Status)
			assert.Equal(t, tt.mockMode, envelope.Data.MockMode)

			ts, err := time.Parse(time.RFC3339, envelope.Data.Timestamp)
			require.NoError(t, err)
			assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
		})
	}
}
