package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/ports"
)

// AdminService mutates the user base on behalf of an ADMIN caller. Role and
// active-flag writes are single-document updates, so concurrent admin calls
// against the same user serialize in the store and never produce torn records.
type AdminService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAdminService(users ports.UserRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, log: log}
}

func (s *AdminService) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *AdminService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AdminService) GetUsersByRole(ctx context.Context, role string) ([]*domain.User, error) {
	return s.users.FindByRole(ctx, role)
}

func (s *AdminService) PromoteToAdmin(ctx context.Context, id string) (*domain.User, error) {
	return s.setRole(ctx, id, domain.RoleAdmin)
}

func (s *AdminService) PromoteToManager(ctx context.Context, id string) (*domain.User, error) {
	return s.setRole(ctx, id, domain.RoleManager)
}

func (s *AdminService) DemoteToUser(ctx context.Context, id string) (*domain.User, error) {
	return s.setRole(ctx, id, domain.RoleUser)
}

func (s *AdminService) setRole(ctx context.Context, id, role string) (*domain.User, error) {
	user, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("role", role).Msg("role changed")
	return user, nil
}

func (s *AdminService) ActivateUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.SetActive(ctx, id, true)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user activated")
	return user, nil
}

// DeactivateUser disables an account. The acting admin's own account is
// never a valid target.
func (s *AdminService) DeactivateUser(ctx context.Context, id, actingUsername string) (*domain.User, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if target.Username == actingUsername {
		return nil, domain.ErrUserProtected
	}

	user, err := s.users.SetActive(ctx, id, false)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("username", user.Username).Msg("user deactivated")
	return user, nil
}

// DeleteUser removes an account permanently. Self-deletion is refused like
// self-deactivation.
func (s *AdminService) DeleteUser(ctx context.Context, id, actingUsername string) error {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Username == actingUsername {
		return domain.ErrUserProtected
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Str("username", target.Username).Msg("user deleted")
	return nil
}

func (s *AdminService) GetStats(ctx context.Context) (*ports.UserStats, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.users.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := s.users.FindByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	managers, err := s.users.FindByRole(ctx, domain.RoleManager)
	if err != nil {
		return nil, err
	}
	regular, err := s.users.FindByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}

	return &ports.UserStats{
		TotalUsers:   total,
		ActiveUsers:  active,
		Admins:       len(admins),
		Managers:     len(managers),
		RegularUsers: len(regular),
	}, nil
}
