package domain

import "time"

const (
	RoleUser    = "USER"
	RoleManager = "MANAGER"
	RoleAdmin   = "ADMIN"
)

// ValidRole reports whether r is one of the three recognised roles.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleManager || r == RoleAdmin
}

// User models an account in the back office. Accounts are soft-disabled via
// the Active flag; a disabled user cannot authenticate but keeps its record.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated identity attached to a request by the
// authentication middleware. It lives for the duration of one request and is
// never persisted.
type Principal struct {
	Username string
	Role     string
}

// Authority returns the capability tag consulted by the authorization rules,
// e.g. "ROLE_ADMIN".
func (p Principal) Authority() string {
	return "ROLE_" + p.Role
}
