package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendarhub/internal/user"
	"calendarhub/pkg/response"
)

// Create godoc
// @Summary     Provision a user
// @Description Creates a user account that can then sign in with Google. Requires the admin key.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string    true "Admin API key"
// @Param       body        body   createReq true "User data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.ErrResp "Missing email or name"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     409 {object} response.ErrResp "Email already registered"
// @Router      /api/v1/admin/users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, "Email and name are required")
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			response.Conflict(c, "Email already registered")
			return
		}
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.InternalError(c, "Failed to create user", err)
		return
	}

	response.OK(c, h.newCreateResp(created))
}
