package http

import (
	"github.com/gin-gonic/gin"

	"calendarhub/internal/auth"
	"calendarhub/pkg/log"
	"calendarhub/pkg/session"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	GoogleCallback(c *gin.Context)
	OutlookCallback(c *gin.Context)
	Session(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       auth.UseCase
	sessions *session.Manager
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, sessions *session.Manager) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
