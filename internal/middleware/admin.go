package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"calendarhub/pkg/response"
)

// AdminKey guards provisioning routes with the X-Admin-Key header.
func (m Middleware) AdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		if m.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.adminKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
