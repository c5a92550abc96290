package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/supplychain/backoffice/internal/core/domain"
	"github.com/supplychain/backoffice/internal/core/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	s.users[u.Username] = u
	return u, nil
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) FindByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindAll(context.Context) ([]*domain.User, error) { return nil, nil }

func (s *stubUserRepo) FindByRole(context.Context, string) ([]*domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) UpdateRole(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) SetActive(context.Context, string, bool) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) Delete(context.Context, string) error { return domain.ErrUserNotFound }

func (s *stubUserRepo) Count(context.Context) (int64, error) { return 0, nil }

func (s *stubUserRepo) CountActive(context.Context) (int64, error) { return 0, nil }

func authTestSetup(t *testing.T) (*token.Provider, *stubUserRepo, echo.MiddlewareFunc) {
	t.Helper()
	tokens := token.NewProvider("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"alice": {ID: "1", Username: "alice", Role: domain.RoleUser, Active: true},
		"frank": {ID: "2", Username: "frank", Role: domain.RoleManager, Active: false},
	}}
	return tokens, repo, Authenticate(tokens, repo)
}

func runAuthenticated(t *testing.T, mw echo.MiddlewareFunc, header string) (echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(echo.Context) error {
		called = true
		return nil
	})(c)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatalf("middleware short-circuited the chain")
	}
	_, ok := PrincipalFrom(c)
	return c, ok
}

func TestAuthenticateValidToken(t *testing.T) {
	tokens, _, mw := authTestSetup(t)
	raw, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, ok := runAuthenticated(t, mw, "Bearer "+raw)
	if !ok {
		t.Fatalf("expected principal to be attached")
	}
	p, _ := PrincipalFrom(c)
	if p.Username != "alice" || p.Role != domain.RoleUser {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if got := p.Authority(); got != "ROLE_USER" {
		t.Fatalf("authority = %q, want ROLE_USER", got)
	}
}

func TestAuthenticateNoHeader(t *testing.T) {
	_, _, mw := authTestSetup(t)
	if _, ok := runAuthenticated(t, mw, ""); ok {
		t.Fatalf("anonymous request must not carry a principal")
	}
}

func TestAuthenticateNonBearerScheme(t *testing.T) {
	_, _, mw := authTestSetup(t)
	if _, ok := runAuthenticated(t, mw, "Basic YWxpY2U6cEBzcw=="); ok {
		t.Fatalf("non-bearer scheme must stay anonymous")
	}
}

func TestAuthenticateTamperedToken(t *testing.T) {
	tokens, _, mw := authTestSetup(t)
	raw, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	last := raw[len(raw)-1]
	flip := byte('A')
	if last == 'A' {
		flip = 'B'
	}
	tampered := raw[:len(raw)-1] + string(flip)

	if _, ok := runAuthenticated(t, mw, "Bearer "+tampered); ok {
		t.Fatalf("tampered token must stay anonymous")
	}
}

func TestAuthenticateUnknownSubject(t *testing.T) {
	tokens, _, mw := authTestSetup(t)
	raw, err := tokens.Issue("ghost")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, ok := runAuthenticated(t, mw, "Bearer "+raw); ok {
		t.Fatalf("token for a deleted user must stay anonymous")
	}
}

func TestAuthenticateDisabledUser(t *testing.T) {
	tokens, _, mw := authTestSetup(t)
	raw, err := tokens.Issue("frank")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, ok := runAuthenticated(t, mw, "Bearer "+raw); ok {
		t.Fatalf("disabled account must stay anonymous")
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, _, mw := authTestSetup(t)
	if _, ok := runAuthenticated(t, mw, "Bearer "+raw); ok {
		t.Fatalf("expired token must stay anonymous")
	}
}
