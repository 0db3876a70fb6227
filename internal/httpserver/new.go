package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	authHTTP "calendarhub/internal/auth/delivery/http"
	calendarHTTP "calendarhub/internal/calendar/delivery/http"
	"calendarhub/internal/middleware"
	userHTTP "calendarhub/internal/user/delivery/http"
	"calendarhub/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Domain handlers
	authHandler     authHTTP.Handler
	calendarHandler calendarHTTP.Handler
	userHandler     userHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	AuthHandler     authHTTP.Handler
	CalendarHandler calendarHTTP.Handler
	UserHandler     userHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		authHandler:     cfg.AuthHandler,
		calendarHandler: cfg.CalendarHandler,
		userHandler:     cfg.UserHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authHandler == nil || srv.calendarHandler == nil || srv.userHandler == nil {
		return errors.New("domain handlers are required")
	}
	return nil
}
