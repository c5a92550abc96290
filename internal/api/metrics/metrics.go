package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

var (
	// LoginsTotal counts login attempts by outcome (success, failure).
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Login attempts by outcome.",
	}, []string{"result"})

	// TokenRejectionsTotal counts bearer tokens that failed to resolve
	// into a principal, by rejection reason.
	TokenRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Bearer tokens rejected during authentication, by reason.",
	}, []string{"reason"})

	// AuthzDenialsTotal counts requests denied by the authorization
	// middleware, by HTTP status (401 or 403).
	AuthzDenialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Requests denied by route authorization, by status.",
	}, []string{"status"})
)
