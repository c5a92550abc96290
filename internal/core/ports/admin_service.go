package ports

import (
	"context"

	"github.com/supplychain/backoffice/internal/core/domain"
)

// UserStats is the admin dashboard summary of the user base.
type UserStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	ActiveUsers  int64 `json:"activeUsers"`
	Admins       int   `json:"admins"`
	Managers     int   `json:"managers"`
	RegularUsers int   `json:"regularUsers"`
}

// AdminService covers role administration: listing accounts, moving them
// between roles, toggling the active flag, and deleting them. The acting
// admin's username is passed where an operation must not target the
// caller's own account.
type AdminService interface {
	GetAllUsers(ctx context.Context) ([]*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUsersByRole(ctx context.Context, role string) ([]*domain.User, error)
	PromoteToAdmin(ctx context.Context, id string) (*domain.User, error)
	PromoteToManager(ctx context.Context, id string) (*domain.User, error)
	DemoteToUser(ctx context.Context, id string) (*domain.User, error)
	ActivateUser(ctx context.Context, id string) (*domain.User, error)
	DeactivateUser(ctx context.Context, id, actingUsername string) (*domain.User, error)
	DeleteUser(ctx context.Context, id, actingUsername string) error
	GetStats(ctx context.Context) (*UserStats, error)
}
