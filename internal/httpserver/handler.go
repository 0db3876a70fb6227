package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "calendarhub/internal/auth/delivery/http"
	calendarHTTP "calendarhub/internal/calendar/delivery/http"
	userHTTP "calendarhub/internal/user/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	authHTTP.RegisterRoutes(srv.gin.Group("/api/auth"), srv.authHandler, srv.mw)
	srv.l.Infof(ctx, "Auth domain registered")

	api := srv.gin.Group("/api/v1")
	calendarHTTP.RegisterRoutes(api, srv.calendarHandler, srv.mw)
	srv.l.Infof(ctx, "Calendar domain registered")

	userHTTP.RegisterRoutes(api, srv.userHandler, srv.mw)
	srv.l.Infof(ctx, "User domain registered")
}
