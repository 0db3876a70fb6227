package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"calendarhub/pkg/log"
	"calendarhub/pkg/session"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l        log.Logger
	sessions *session.Manager
	adminKey string

	syncPerMin int
	limiters   *expirable.LRU[string, *rate.Limiter]
}

// Config configures the middleware set.
type Config struct {
	Sessions       *session.Manager
	AdminKey       string
	SyncRatePerMin int
}

// New creates the middleware set. Per-user rate limiters live in a bounded
// expiring cache so idle users do not accumulate.
func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:          l,
		sessions:   cfg.Sessions,
		adminKey:   cfg.AdminKey,
		syncPerMin: cfg.SyncRatePerMin,
		limiters:   expirable.NewLRU[string, *rate.Limiter](1024, nil, 10*time.Minute),
	}
}
