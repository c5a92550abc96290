package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supplychain/backoffice/internal/core/ports"
)

type SaleHandler struct {
	sales ports.SaleService
}

func NewSaleHandler(sales ports.SaleService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

func (r saleRequest) input() ports.SaleInput {
	return ports.SaleInput{
		SaleOrderNumber: r.SaleOrderNumber,
		ProductID:       r.ProductID,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		TotalAmount:     r.TotalAmount,
		Status:          r.Status,
		CustomerName:    r.CustomerName,
		DeliveryAddress: r.DeliveryAddress,
	}
}

// Create handles POST /sales.
func (h *SaleHandler) Create(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sale, err := h.sales.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sale)
}

// List handles GET /sales.
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.sales.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// Get handles GET /sales/:id.
func (h *SaleHandler) Get(c echo.Context) error {
	sale, err := h.sales.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}

// GetByOrderNumber handles GET /sales/order/:orderNumber.
func (h *SaleHandler) GetByOrderNumber(c echo.Context) error {
	sale, err := h.sales.GetByOrderNumber(c.Request().Context(), c.Param("orderNumber"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}

// ListByStatus handles GET /sales/status/:status. Status filtering is an
// exact match on the stored value.
func (h *SaleHandler) ListByStatus(c echo.Context) error {
	sales, err := h.sales.GetByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// ListByProduct handles GET /sales/product/:productId.
func (h *SaleHandler) ListByProduct(c echo.Context) error {
	sales, err := h.sales.GetByProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// Update handles PUT /sales/:id. The order number is immutable.
func (h *SaleHandler) Update(c echo.Context) error {
	var req saleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sale, err := h.sales.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sale)
}

// Delete handles DELETE /sales/:id.
func (h *SaleHandler) Delete(c echo.Context) error {
	if err := h.sales.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Sale deleted successfully"})
}
