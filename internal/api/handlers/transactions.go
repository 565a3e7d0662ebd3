// Package handlers implements the HTTP handlers of the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack/ecotrack-backend/internal/api/dto"
	"github.com/ecotrack/ecotrack-backend/internal/application/service"
)

// TransactionsHandler serves the batch calculation and import endpoints.
type TransactionsHandler struct {
	engine *service.Engine
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(engine *service.Engine) *TransactionsHandler {
	return &TransactionsHandler{engine: engine}
}

// CalculateCarbon handles POST /api/transactions/calculate-carbon.
// The batch is annotated and returned with totals; a missing or
// non-array transactions field is the one input rejected outright.
func (h *TransactionsHandler) CalculateCarbon(c *gin.Context) {
	var req dto.CalculateCarbonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError("request body must be a JSON object"))
		return
	}

	txs, problem := req.Decode()
	if problem != "" {
		c.JSON(http.StatusBadRequest, dto.ValidationError(problem))
		return
	}

	enriched, batch := h.engine.CalculateBatch(txs)

	c.JSON(http.StatusOK, dto.OK(dto.CalculateCarbonResponse{
		Transactions: enriched,
		Summary:      batch,
	}))
}

// Import handles POST /api/users/:id/transactions/import: the batch is
// enriched and appended to the user's stored history.
func (h *TransactionsHandler) Import(c *gin.Context) {
	userID := c.Param("id")

	var req dto.CalculateCarbonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError("request body must be a JSON object"))
		return
	}

	txs, problem := req.Decode()
	if problem != "" {
		c.JSON(http.StatusBadRequest, dto.ValidationError(problem))
		return
	}

	enriched, err := h.engine.ImportTransactions(userID, txs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	var batch service.BatchSummary
	for _, tx := range enriched {
		batch.TotalCarbon += tx.CarbonFootprint
		batch.TotalEcoPoints += tx.EcoPoints
	}

	c.JSON(http.StatusOK, dto.OK(dto.ImportResponse{
		Imported: len(enriched),
		Summary:  batch,
	}))
}
