package ports

import (
	"context"

	"github.com/supplychain/backoffice/internal/core/domain"
)

// UserRepository owns user persistence. FindByUsername doubles as the
// identity store consulted on every authenticated request, so it must
// return domain.ErrUserNotFound on a miss rather than a blank record.
// Username uniqueness is enforced by the store at write time.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByRole(ctx context.Context, role string) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
