package http

import (
	"github.com/gin-gonic/gin"

	"calendarhub/internal/calendar"
)

// processSyncReq binds the sync request body and resolves the direction.
func (h *handler) processSyncReq(c *gin.Context) (calendar.Direction, error) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", calendar.ErrInvalidDirection
	}
	return req.toDirection()
}
