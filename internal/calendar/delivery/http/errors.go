package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendarhub/internal/calendar"
	"calendarhub/internal/user/repository"
	"calendarhub/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	var missingTokens *calendar.MissingTokensError
	var sourceFetch *calendar.SourceFetchError

	switch {
	case errors.Is(err, calendar.ErrInvalidDirection):
		response.BadRequest(c, "Invalid sync direction")
	case errors.As(err, &missingTokens):
		response.BadRequest(c, missingTokens.Error())
	case errors.Is(err, repository.ErrUserNotFound):
		response.Unauthorized(c)
	case errors.As(err, &sourceFetch):
		response.InternalError(c, "Sync failed", err)
	default:
		response.InternalError(c, "Internal server error", err)
	}
}
