package middleware

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/supplychain/backoffice/internal/api/metrics"
	"github.com/supplychain/backoffice/internal/core/domain"
)

const anyMethod = "*"

// A Rule maps (HTTP method, path prefix) to the set of roles allowed
// through. An empty role set with Public=false means any authenticated
// principal passes; Public=true means anonymous requests pass too.
type Rule struct {
	Method string
	Prefix string
	Roles  []string
	Public bool
}

// DefaultRules is the route access table. Lookup picks the rule with the
// longest matching prefix, preferring an exact method match over a
// wildcard, so ordering here is not significant.
var DefaultRules = []Rule{
	{Method: anyMethod, Prefix: "/auth/", Public: true},
	{Method: anyMethod, Prefix: "/swagger/", Public: true},
	// Documentation paths served by the previous stack stay public so old
	// bookmarks and tooling get a 404, never a 401.
	{Method: anyMethod, Prefix: "/v3/api-docs", Public: true},
	{Method: anyMethod, Prefix: "/swagger-ui/", Public: true},
	{Method: anyMethod, Prefix: "/swagger-ui.html", Public: true},
	{Method: anyMethod, Prefix: "/webjars/", Public: true},
	{Method: "GET", Prefix: "/health", Public: true},
	{Method: "GET", Prefix: "/ready", Public: true},
	{Method: "GET", Prefix: "/metrics", Public: true},

	{Method: "GET", Prefix: "/products", Roles: []string{domain.RoleUser, domain.RoleManager, domain.RoleAdmin}},
	{Method: "POST", Prefix: "/products", Roles: []string{domain.RoleManager, domain.RoleAdmin}},
	{Method: "PUT", Prefix: "/products", Roles: []string{domain.RoleManager, domain.RoleAdmin}},
	{Method: "DELETE", Prefix: "/products", Roles: []string{domain.RoleAdmin}},

	{Method: "GET", Prefix: "/stocks", Roles: []string{domain.RoleUser, domain.RoleManager, domain.RoleAdmin}},
	{Method: "POST", Prefix: "/stocks", Roles: []string{domain.RoleManager, domain.RoleAdmin}},
	{Method: "PUT", Prefix: "/stocks", Roles: []string{domain.RoleManager, domain.RoleAdmin}},
	{Method: "DELETE", Prefix: "/stocks", Roles: []string{domain.RoleAdmin}},

	{Method: "GET", Prefix: "/sales", Roles: []string{domain.RoleUser, domain.RoleManager, domain.RoleAdmin}},
	{Method: "POST", Prefix: "/sales", Roles: []string{domain.RoleManager, domain.RoleAdmin}},
	{Method: "PUT", Prefix: "/sales", Roles: []string{domain.RoleManager, domain.RoleAdmin}},
	{Method: "DELETE", Prefix: "/sales", Roles: []string{domain.RoleAdmin}},

	{Method: "GET", Prefix: "/suppliers", Roles: []string{domain.RoleUser, domain.RoleManager, domain.RoleAdmin}},
	{Method: "POST", Prefix: "/suppliers", Roles: []string{domain.RoleManager, domain.RoleAdmin}},
	{Method: "PUT", Prefix: "/suppliers", Roles: []string{domain.RoleManager, domain.RoleAdmin}},
	{Method: "DELETE", Prefix: "/suppliers", Roles: []string{domain.RoleAdmin}},

	{Method: "GET", Prefix: "/analytics", Roles: []string{domain.RoleManager, domain.RoleAdmin}},

	{Method: anyMethod, Prefix: "/admin/", Roles: []string{domain.RoleAdmin}},
}

// Authorize enforces the rule table against the request path and the
// principal attached by Authenticate. Routes not covered by any rule
// require authentication but no particular role. Denials surface as
// sentinel errors so the central error handler renders the response.
func Authorize(rules []Rule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule := match(rules, c.Request().Method, c.Request().URL.Path)
			if rule != nil && rule.Public {
				return next(c)
			}

			principal, ok := PrincipalFrom(c)
			if !ok {
				metrics.AuthzDenialsTotal.WithLabelValues(strconv.Itoa(401)).Inc()
				return domain.ErrUnauthenticated
			}
			if rule == nil || len(rule.Roles) == 0 {
				return next(c)
			}
			for _, role := range rule.Roles {
				if principal.Role == role {
					return next(c)
				}
			}
			metrics.AuthzDenialsTotal.WithLabelValues(strconv.Itoa(403)).Inc()
			return domain.ErrForbidden
		}
	}
}

// match returns the most specific rule for the request, or nil. Longest
// prefix wins; among equal prefixes an exact method match beats the
// wildcard.
func match(rules []Rule, method, path string) *Rule {
	var best *Rule
	bestLen, bestExact := -1, false
	for i := range rules {
		r := &rules[i]
		if !prefixMatch(path, r.Prefix) {
			continue
		}
		exact := r.Method == method
		if !exact && r.Method != anyMethod {
			continue
		}
		if len(r.Prefix) > bestLen || (len(r.Prefix) == bestLen && exact && !bestExact) {
			best, bestLen, bestExact = r, len(r.Prefix), exact
		}
	}
	return best
}

// prefixMatch reports whether path falls under prefix on a path-segment
// boundary, so "/products" covers "/products" and "/products/1" but not
// "/productsarchive".
func prefixMatch(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if len(path) == len(prefix) || strings.HasSuffix(prefix, "/") {
		return true
	}
	return path[len(prefix)] == '/'
}
