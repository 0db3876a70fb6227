package http

import (
	"github.com/gin-gonic/gin"

	"calendarhub/internal/middleware"
	"calendarhub/pkg/response"
)

// Sync godoc
// @Summary     Run a calendar sync
// @Description Copies events between the linked Outlook and Google calendars in the requested direction.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body syncReq true "Sync direction: outlook-to-google, google-to-outlook or both"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.ErrResp "Invalid direction or account not connected"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     500 {object} response.ErrResp "Source calendar fetch failed"
// @Router      /api/v1/calendar/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	direction, err := h.processSyncReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	out, err := h.uc.Sync(ctx, user.ID, direction)
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSyncResp(out))
}

// ListEvents godoc
// @Summary     List calendar events
// @Description Returns the merged events of all linked calendars sorted by start time.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} eventsResp
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.ListEvents(ctx, user.ID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newEventsResp(out))
}
