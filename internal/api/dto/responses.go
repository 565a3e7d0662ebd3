package dto

import (
	"time"

	"github.com/ecotrack/ecotrack-backend/internal/application/service"
	"github.com/ecotrack/ecotrack-backend/internal/model"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a health response with current timestamp.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// CalculateCarbonResponse returns the annotated batch plus its totals.
type CalculateCarbonResponse struct {
	Transactions []model.Transaction  `json:"transactions"`
	Summary      service.BatchSummary `json:"summary"`
}

// ImportResponse reports how many transactions were stored for a user.
type ImportResponse struct {
	Imported int                  `json:"imported"`
	Summary  service.BatchSummary `json:"summary"`
}
