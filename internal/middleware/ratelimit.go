package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"calendarhub/pkg/response"
)

// RateLimit throttles a route per session user. Runs after Auth.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.syncPerMin <= 0 {
			c.Next()
			return
		}

		user, ok := UserFromContext(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		limiter, ok := m.limiters.Get(user.ID)
		if !ok {
			limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.syncPerMin)), m.syncPerMin)
			m.limiters.Add(user.ID, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for user %s", user.ID)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
