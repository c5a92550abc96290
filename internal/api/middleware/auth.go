package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/supplychain/backoffice/internal/api/metrics"
	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/ports"
	"github.com/supplychain/backoffice/internal/core/token"
)

const principalKey = "principal"

const bearerPrefix = "Bearer "

// Authenticate resolves a bearer token into a request-scoped principal.
//
// The middleware has exactly one job: promote the request from anonymous to
// authenticated when a valid token names an existing, active user. It never
// writes a response and never aborts the chain — a missing or bad token just
// leaves the request anonymous, and the authorization middleware decides
// whether anonymous is acceptable for the route. Public endpoints therefore
// keep working even when clients send garbage tokens.
//
// The user record is re-read on every request, so a role change or
// deactivation takes effect immediately even for tokens issued earlier.
func Authenticate(tokens *token.Provider, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return next(c)
			}

			username, err := tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), username)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					return next(c)
				}
				return err
			}
			if !user.Active {
				metrics.TokenRejectionsTotal.WithLabelValues("account_disabled").Inc()
				return next(c)
			}

			c.Set(principalKey, domain.Principal{Username: user.Username, Role: user.Role})
			return next(c)
		}
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrSignatureInvalid):
		return "bad_signature"
	case errors.Is(err, token.ErrNoSubject):
		return "no_subject"
	default:
		return "malformed"
	}
}

// PrincipalFrom returns the principal attached by Authenticate, if any.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
