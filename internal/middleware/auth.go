package middleware

import (
	"github.com/gin-gonic/gin"

	"calendarhub/pkg/response"
	"calendarhub/pkg/session"
)

// ContextUserKey is the gin context key holding the resolved session user.
const ContextUserKey = "sessionUser"

// Auth resolves the calling principal from the session cookie. Requests
// without a valid session are rejected with 401 before any handler runs.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := m.sessions.Verify(cookie)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// UserFromContext returns the session user set by Auth.
func UserFromContext(c *gin.Context) (session.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return session.User{}, false
	}
	user, ok := v.(session.User)
	return user, ok
}
