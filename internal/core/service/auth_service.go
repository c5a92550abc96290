package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/password"
	"github.com/supplychain/backoffice/internal/core/ports"
	"github.com/supplychain/backoffice/internal/core/token"
)

// AuthService implements login and registration on top of the user store,
// the password hasher and the token provider.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Provider
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Provider, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Login exchanges credentials for a bearer token. Unknown username, disabled
// account and wrong password all collapse into ErrInvalidCredentials so the
// caller cannot distinguish them.
func (s *AuthService) Login(ctx context.Context, username, pass string) (string, *domain.User, error) {
	if username == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Active {
		s.log.Warn().Str("username", username).Msg("login attempt on disabled account")
		return "", nil, domain.ErrInvalidCredentials
	}

	if !password.Verify(pass, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	raw, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", username).Str("role", user.Role).Msg("login succeeded")
	return raw, user, nil
}

// Register creates a regular USER account. Role and active flag are fixed;
// privilege changes go through role administration.
func (s *AuthService) Register(ctx context.Context, username, pass string) (*domain.User, error) {
	if username == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	digest, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: digest,
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Msg("user registered")
	return created, nil
}
