package http

import (
	"github.com/gin-gonic/gin"

	"calendarhub/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	admin := rg.Group("/admin", mw.AdminKey())
	{
		admin.POST("/users", h.Create)
	}
}
