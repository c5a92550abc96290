package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supplychain/backoffice/internal/core/ports"
)

type SupplierHandler struct {
	suppliers ports.SupplierService
}

func NewSupplierHandler(suppliers ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

func (r supplierRequest) input() ports.SupplierInput {
	return ports.SupplierInput{
		SupplierCode:  r.SupplierCode,
		SupplierName:  r.SupplierName,
		Description:   r.Description,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Active:        r.Active,
	}
}

// Create handles POST /suppliers.
func (h *SupplierHandler) Create(c echo.Context) error {
	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	supplier, err := h.suppliers.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, supplier)
}

// List handles GET /suppliers.
func (h *SupplierHandler) List(c echo.Context) error {
	suppliers, err := h.suppliers.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suppliers)
}

// Get handles GET /suppliers/:id.
func (h *SupplierHandler) Get(c echo.Context) error {
	supplier, err := h.suppliers.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

// GetByCode handles GET /suppliers/code/:code.
func (h *SupplierHandler) GetByCode(c echo.Context) error {
	supplier, err := h.suppliers.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

// GetByEmail handles GET /suppliers/email/:email.
func (h *SupplierHandler) GetByEmail(c echo.Context) error {
	supplier, err := h.suppliers.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

// ListActive handles GET /suppliers/active/all.
func (h *SupplierHandler) ListActive(c echo.Context) error {
	suppliers, err := h.suppliers.GetActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suppliers)
}

// Update handles PUT /suppliers/:id. The supplier code is immutable.
func (h *SupplierHandler) Update(c echo.Context) error {
	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	supplier, err := h.suppliers.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

// Delete handles DELETE /suppliers/:id.
func (h *SupplierHandler) Delete(c echo.Context) error {
	if err := h.suppliers.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Supplier deleted successfully"})
}
