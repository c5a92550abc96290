package ports

import (
	"context"

	"github.com/supplychain/backoffice/internal/core/domain"
)

// AuthService implements login and self-service registration.
//
// Login returns domain.ErrInvalidCredentials for every failure mode —
// unknown user, disabled account, wrong password — so the response cannot
// reveal which one occurred.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Register(ctx context.Context, username, password string) (*domain.User, error)
}
