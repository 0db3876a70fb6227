package http

import (
	"github.com/gin-gonic/gin"

	"calendarhub/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The Outlook
// callback links a second account, so it requires an existing session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/login/:provider", h.Login)
	rg.GET("/callback/google", h.GoogleCallback)
	rg.GET("/callback/outlook", mw.Auth(), h.OutlookCallback)
	rg.GET("/session", h.Session)
	rg.POST("/logout", h.Logout)
}
