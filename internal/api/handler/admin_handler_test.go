package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/ports"
)

type stubAdminService struct {
	promoteFn    func(ctx context.Context, id string) (*domain.User, error)
	deactivateFn func(ctx context.Context, id, actingUsername string) (*domain.User, error)
	statsFn      func(ctx context.Context) (*ports.UserStats, error)
}

func (s *stubAdminService) GetAllUsers(context.Context) ([]*domain.User, error) { return nil, nil }

func (s *stubAdminService) GetUserByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAdminService) GetUsersByRole(context.Context, string) ([]*domain.User, error) {
	return nil, nil
}

func (s *stubAdminService) PromoteToAdmin(ctx context.Context, id string) (*domain.User, error) {
	return s.promoteFn(ctx, id)
}

func (s *stubAdminService) PromoteToManager(ctx context.Context, id string) (*domain.User, error) {
	return s.promoteFn(ctx, id)
}

func (s *stubAdminService) DemoteToUser(ctx context.Context, id string) (*domain.User, error) {
	return s.promoteFn(ctx, id)
}

func (s *stubAdminService) ActivateUser(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAdminService) DeactivateUser(ctx context.Context, id, actingUsername string) (*domain.User, error) {
	return s.deactivateFn(ctx, id, actingUsername)
}

func (s *stubAdminService) DeleteUser(context.Context, string, string) error {
	return domain.ErrUserNotFound
}

func (s *stubAdminService) GetStats(ctx context.Context) (*ports.UserStats, error) {
	return s.statsFn(ctx)
}

func newAdminContext(t *testing.T, method, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("principal", domain.Principal{Username: "root", Role: domain.RoleAdmin})
	return c, rec
}

func TestAdminHandler_PromoteToManager(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		promoteFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Username: "alice", Role: domain.RoleManager, Active: true}, nil
		},
	})

	c, rec := newAdminContext(t, http.MethodPost, "/admin/users/u1/promote-to-manager")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.PromoteToManager(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Role != domain.RoleManager {
		t.Fatalf("expected MANAGER, got %q", resp.Role)
	}
}

func TestAdminHandler_DeactivatePassesActingUsername(t *testing.T) {
	var gotActing string
	h := NewAdminHandler(&stubAdminService{
		deactivateFn: func(_ context.Context, id, acting string) (*domain.User, error) {
			gotActing = acting
			return &domain.User{ID: id, Username: "alice", Role: domain.RoleUser}, nil
		},
	})

	c, _ := newAdminContext(t, http.MethodPost, "/admin/users/u1/deactivate")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.DeactivateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotActing != "root" {
		t.Fatalf("acting username = %q, want root", gotActing)
	}
}

func TestAdminHandler_SelfDeactivationRejected(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		deactivateFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrUserProtected
		},
	})

	c, _ := newAdminContext(t, http.MethodPost, "/admin/users/self/deactivate")
	c.SetParamNames("id")
	c.SetParamValues("self")

	if err := h.DeactivateUser(c); !errors.Is(err, domain.ErrUserProtected) {
		t.Fatalf("expected ErrUserProtected, got %v", err)
	}
}

func TestAdminHandler_ListByUnknownRole(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{})

	c, _ := newAdminContext(t, http.MethodGet, "/admin/users/role/WIZARD")
	c.SetParamNames("role")
	c.SetParamValues("WIZARD")

	err := h.ListUsersByRole(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminHandler_Stats(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		statsFn: func(context.Context) (*ports.UserStats, error) {
			return &ports.UserStats{TotalUsers: 5, ActiveUsers: 4, Admins: 1, Managers: 1, RegularUsers: 3}, nil
		},
	})

	c, rec := newAdminContext(t, http.MethodGet, "/admin/users/stats")
	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp ports.UserStats
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.TotalUsers != 5 || resp.Admins != 1 {
		t.Fatalf("unexpected stats: %+v", resp)
	}
}
