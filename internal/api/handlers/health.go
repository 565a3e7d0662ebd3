package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack/ecotrack-backend/internal/api/dto"
)

// Health handles GET /health. No /api prefix, for load balancers.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewHealthResponse())
}
