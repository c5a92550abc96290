package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supplychain/backoffice/internal/core/ports"
)

// AnalyticsHandler serves the dashboard aggregates. The heavy lifting is
// pushed into Mongo pipelines and cached briefly, so these handlers stay
// thin.
type AnalyticsHandler struct {
	analytics ports.AnalyticsService
}

func NewAnalyticsHandler(analytics ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Sales handles GET /analytics/sales.
func (h *AnalyticsHandler) Sales(c echo.Context) error {
	out, err := h.analytics.Sales(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Inventory handles GET /analytics/inventory.
func (h *AnalyticsHandler) Inventory(c echo.Context) error {
	out, err := h.analytics.Inventory(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Dashboard handles GET /analytics/dashboard.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	out, err := h.analytics.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
