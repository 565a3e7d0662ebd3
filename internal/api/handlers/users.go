package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack/ecotrack-backend/internal/api/dto"
	"github.com/ecotrack/ecotrack-backend/internal/application/service"
)

// UsersHandler serves the per-user summary endpoints. Summaries are
// recomputed from the full stored history on every request.
type UsersHandler struct {
	engine *service.Engine
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(engine *service.Engine) *UsersHandler {
	return &UsersHandler{engine: engine}
}

// referenceTime resolves the reference instant for windowed summaries.
// Callers (and tests) can pin it with ?now=RFC3339; otherwise the server
// clock is injected here at the edge, keeping the engine itself pure.
func referenceTime(c *gin.Context) (time.Time, bool) {
	raw := c.Query("now")
	if raw == "" {
		return time.Now().UTC(), true
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// Footprint handles GET /api/users/:id/footprint.
func (h *UsersHandler) Footprint(c *gin.Context) {
	now, ok := referenceTime(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ValidationError("now must be an RFC3339 timestamp"))
		return
	}

	summary, err := h.engine.UserFootprint(c.Param("id"), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusOK, dto.OK(summary))
}

// EcoPoints handles GET /api/users/:id/eco-points.
func (h *UsersHandler) EcoPoints(c *gin.Context) {
	now, ok := referenceTime(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ValidationError("now must be an RFC3339 timestamp"))
		return
	}

	summary, err := h.engine.UserPoints(c.Param("id"), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusOK, dto.OK(summary))
}

// Garden handles GET /api/users/:id/garden.
func (h *UsersHandler) Garden(c *gin.Context) {
	now, ok := referenceTime(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ValidationError("now must be an RFC3339 timestamp"))
		return
	}

	garden, err := h.engine.UserGarden(c.Param("id"), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusOK, dto.OK(garden))
}
