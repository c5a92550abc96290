// Package password wraps bcrypt for credential hashing. Every digest carries
// its own random salt and the comparison runs in constant time, so callers
// never handle salts or timing concerns themselves.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// Hash derives a salted bcrypt digest from plain. Empty input is rejected so
// an account can never be created with a blank credential.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches the stored digest. Any failure,
// including an unreadable digest, yields false rather than an error; the
// login path treats all of them as a credential mismatch.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
