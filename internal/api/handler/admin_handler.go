package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supplychain/backoffice/internal/api/middleware"
	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/ports"
)

// AdminHandler exposes role administration. Every route here sits behind
// the ADMIN-only rule, so handlers only deal with the happy path and let
// the central error handler render failures.
type AdminHandler struct {
	admins ports.AdminService
}

func NewAdminHandler(admins ports.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admins.GetAllUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser handles GET /admin/users/:id.
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.admins.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsersByRole handles GET /admin/users/role/:role.
func (h *AdminHandler) ListUsersByRole(c echo.Context) error {
	role := c.Param("role")
	if !domain.ValidRole(role) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	}
	users, err := h.admins.GetUsersByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// PromoteToAdmin handles POST /admin/users/:id/promote-to-admin.
func (h *AdminHandler) PromoteToAdmin(c echo.Context) error {
	user, err := h.admins.PromoteToAdmin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// PromoteToManager handles POST /admin/users/:id/promote-to-manager.
func (h *AdminHandler) PromoteToManager(c echo.Context) error {
	user, err := h.admins.PromoteToManager(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DemoteToUser handles POST /admin/users/:id/demote-to-user.
func (h *AdminHandler) DemoteToUser(c echo.Context) error {
	user, err := h.admins.DemoteToUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ActivateUser handles POST /admin/users/:id/activate.
func (h *AdminHandler) ActivateUser(c echo.Context) error {
	user, err := h.admins.ActivateUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeactivateUser handles POST /admin/users/:id/deactivate. The acting
// admin cannot deactivate their own account.
func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	principal, _ := middleware.PrincipalFrom(c)
	user, err := h.admins.DeactivateUser(c.Request().Context(), c.Param("id"), principal.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/:id. Self-deletion is rejected.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	principal, _ := middleware.PrincipalFrom(c)
	if err := h.admins.DeleteUser(c.Request().Context(), c.Param("id"), principal.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

// Stats handles GET /admin/users/stats.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.admins.GetStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
