package http

import (
	"github.com/gin-gonic/gin"

	"calendarhub/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	cal := rg.Group("/calendar")
	{
		cal.GET("/events", mw.Auth(), h.ListEvents)
		cal.POST("/sync", mw.Auth(), mw.RateLimit(), h.Sync)
	}
}
