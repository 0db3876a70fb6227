package http

import (
	"github.com/gin-gonic/gin"

	"calendarhub/internal/user"
	"calendarhub/pkg/log"
)

// Handler is the public interface for the user HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
