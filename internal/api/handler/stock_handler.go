package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supplychain/backoffice/internal/core/ports"
)

type StockHandler struct {
	stocks ports.StockService
}

func NewStockHandler(stocks ports.StockService) *StockHandler {
	return &StockHandler{stocks: stocks}
}

func (r stockRequest) input() ports.StockInput {
	return ports.StockInput{
		ProductID:         r.ProductID,
		Quantity:          r.Quantity,
		MinimumLevel:      r.MinimumLevel,
		MaximumLevel:      r.MaximumLevel,
		WarehouseLocation: r.WarehouseLocation,
	}
}

// Create handles POST /stocks. One stock record exists per product.
func (h *StockHandler) Create(c echo.Context) error {
	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stock, err := h.stocks.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, stock)
}

// List handles GET /stocks.
func (h *StockHandler) List(c echo.Context) error {
	stocks, err := h.stocks.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stocks)
}

// Get handles GET /stocks/:id.
func (h *StockHandler) Get(c echo.Context) error {
	stock, err := h.stocks.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stock)
}

// GetByProduct handles GET /stocks/product/:productId.
func (h *StockHandler) GetByProduct(c echo.Context) error {
	stock, err := h.stocks.GetByProductID(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stock)
}

// ListLow handles GET /stocks/low-stock/all. A record is low when its
// quantity is below its own minimum level.
func (h *StockHandler) ListLow(c echo.Context) error {
	stocks, err := h.stocks.GetLow(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stocks)
}

// Update handles PUT /stocks/:id.
func (h *StockHandler) Update(c echo.Context) error {
	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stock, err := h.stocks.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stock)
}

// Delete handles DELETE /stocks/:id.
func (h *StockHandler) Delete(c echo.Context) error {
	if err := h.stocks.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Stock deleted successfully"})
}
