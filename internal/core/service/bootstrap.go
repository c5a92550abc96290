package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/password"
	"github.com/supplychain/backoffice/internal/core/ports"
)

// DefaultAdminPassword is used when no override is configured. Startup logs
// a loud warning when it is still in effect.
const DefaultAdminPassword = "admin123"

// EnsureAdmin creates the bootstrap "admin" account (role ADMIN, active) on
// first start. It is a no-op when the account already exists, so a password
// change made through normal channels survives restarts.
func EnsureAdmin(ctx context.Context, users ports.UserRepository, adminPassword string, log zerolog.Logger) error {
	if adminPassword == "" {
		adminPassword = DefaultAdminPassword
	}

	_, err := users.FindByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	digest, err := password.Hash(adminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Username:     "admin",
		PasswordHash: digest,
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := users.Create(ctx, admin); err != nil {
		// A concurrent replica may have won the race; the unique index makes
		// that outcome equivalent to ours.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	if adminPassword == DefaultAdminPassword {
		log.Warn().Msg("admin account created with the DEFAULT password; set ADMIN_PASSWORD and rotate it immediately")
	} else {
		log.Info().Msg("admin account created")
	}
	return nil
}
