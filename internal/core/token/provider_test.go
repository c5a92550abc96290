package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestProvider_RoundTrip(t *testing.T) {
	p := NewProvider("secret", time.Hour)

	raw, err := p.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected non-empty token")
	}

	subject, err := p.Validate(raw)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %q", subject)
	}
}

func TestProvider_Expired(t *testing.T) {
	p := NewProvider("secret", time.Hour)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := p.Validate(raw); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestProvider_TamperedSignature(t *testing.T) {
	p := NewProvider("secret", time.Hour)

	raw, err := p.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip the last character of the signature segment.
	last := raw[len(raw)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := raw[:len(raw)-1] + string(flipped)

	if _, err := p.Validate(tampered); err != ErrSignatureInvalid {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestProvider_WrongSecret(t *testing.T) {
	issuer := NewProvider("secret-a", time.Hour)
	verifier := NewProvider("secret-b", time.Hour)

	raw, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Validate(raw); err != ErrSignatureInvalid {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestProvider_WrongAlgorithm(t *testing.T) {
	p := NewProvider("secret", time.Hour)

	// HS512-signed token with the right secret must still be rejected.
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := p.Validate(raw); err != ErrSignatureInvalid {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestProvider_Malformed(t *testing.T) {
	p := NewProvider("secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", strings.Repeat("x", 64)} {
		if _, err := p.Validate(raw); err != ErrMalformed {
			t.Fatalf("input %q: expected ErrMalformed, got %v", raw, err)
		}
	}
}

func TestProvider_EmptySubject(t *testing.T) {
	p := NewProvider("secret", time.Hour)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := p.Validate(raw); err != ErrNoSubject {
		t.Fatalf("expected ErrNoSubject, got %v", err)
	}
}

func TestProvider_DefaultTTL(t *testing.T) {
	p := NewProvider("secret", 0)
	if p.TTL() != 24*time.Hour {
		t.Fatalf("expected default 24h TTL, got %v", p.TTL())
	}
}
