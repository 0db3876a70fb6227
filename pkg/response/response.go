package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with the payload as-is.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with an error message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: message})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrResp{Error: "Unauthorized"})
}

// Forbidden sends 403 with an error message.
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrResp{Error: message})
}

// NotFound sends 404 with an error message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrResp{Error: message})
}

// Conflict sends 409 with an error message.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrResp{Error: message})
}

// InternalError sends 500 with a stable message and the underlying detail.
func InternalError(c *gin.Context, message string, err error) {
	resp := ErrResp{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ErrResp{Error: "Too many requests"})
}
