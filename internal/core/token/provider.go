// Package token issues and verifies the stateless bearer tokens used for
// authentication. Tokens are HS256-signed JWTs carrying only the subject and
// the issue/expiry timestamps; roles are deliberately excluded so a role
// change takes effect on the next request, not at the next login.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed        = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
	ErrNoSubject        = errors.New("token subject missing")
)

const defaultTTL = 24 * time.Hour

// Provider mints and validates bearer tokens with a process-wide secret.
// The secret is read-only after construction; Provider is safe for
// concurrent use.
type Provider struct {
	secret []byte
	ttl    time.Duration
}

// NewProvider returns a Provider signing with secret. A non-positive ttl
// falls back to 24 hours.
func NewProvider(secret string, ttl time.Duration) *Provider {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Provider{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (p *Provider) TTL() time.Duration {
	return p.ttl
}

// Issue mints a signed token for username, valid from now until now+ttl.
func (p *Provider) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(p.secret)
}

// Validate parses and verifies a token, returning its subject. The error
// identifies why validation failed: ErrMalformed for unparseable input,
// ErrSignatureInvalid for a bad MAC or wrong algorithm, ErrExpired for a
// token past its expiry, ErrNoSubject for a valid token without a subject.
// No storage lookup happens here; the caller resolves the subject itself.
func (p *Provider) Validate(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrSignatureInvalid
		default:
			return "", ErrMalformed
		}
	}
	if !parsed.Valid {
		return "", ErrMalformed
	}
	if claims.Subject == "" {
		return "", ErrNoSubject
	}
	return claims.Subject, nil
}
