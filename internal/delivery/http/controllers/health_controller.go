package controllers

import (
	"net/http"
	"time"

	"privatemeetups/internal/delivery/http/helpers"
)

type HealthController struct {
	MockMode bool
}

func NewHealthController(mockMode bool) *HealthController {
	return &HealthController{MockMode: mockMode}
}

// HealthResponse is the payload for GET / and GET /health.
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	MockMode  bool   `json:"mock_mode"`
}

// Root godoc
// @Summary Root endpoint with basic info
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router / [get]
func (c *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		MockMode:  c.MockMode,
	})
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		MockMode:  c.MockMode,
	})
}
