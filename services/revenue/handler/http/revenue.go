package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tumpangan/internal/utils"
	"github.com/piresc/tumpangan/services/revenue"
)

// RevenueHandler handles HTTP requests for platform revenue reporting
type RevenueHandler struct {
	aggregator revenue.Aggregator
}

// NewRevenueHandler creates a new revenue handler
func NewRevenueHandler(aggregator revenue.Aggregator) *RevenueHandler {
	return &RevenueHandler{aggregator: aggregator}
}

// RegisterRoutes registers the revenue API routes
func (h *RevenueHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/revenue", h.GetSnapshot)
}

// GetSnapshot handles revenue snapshot requests
func (h *RevenueHandler) GetSnapshot(c echo.Context) error {
	snapshot := h.aggregator.Snapshot()
	return utils.SuccessResponse(c, http.StatusOK, "Revenue retrieved successfully", snapshot)
}
