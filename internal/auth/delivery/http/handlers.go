package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calendarhub/internal/auth"
	"calendarhub/internal/middleware"
	"calendarhub/internal/model"
	"calendarhub/pkg/response"
	"calendarhub/pkg/session"
)

const stateCookie = "oauth_state"

// Login godoc
// @Summary     Start an OAuth login
// @Description Redirects the browser to the provider consent screen.
// @Tags        Auth
// @Param       provider path string true "outlook or google"
// @Success     302
// @Failure     400 {object} response.ErrResp "Unknown provider"
// @Router      /api/auth/login/{provider} [GET]
func (h *handler) Login(c *gin.Context) {
	state := uuid.NewString()

	url, err := h.uc.LoginURL(model.Provider(c.Param("provider")), state)
	if err != nil {
		response.BadRequest(c, "Unknown provider")
		return
	}

	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, url)
}

// GoogleCallback godoc
// @Summary     Google OAuth callback
// @Description Exchanges the code, signs the session cookie and redirects home.
// @Tags        Auth
// @Param       code  query string true  "Authorization code"
// @Param       state query string false "CSRF state"
// @Success     302
// @Failure     400 {object} response.ErrResp "Missing code or state mismatch"
// @Router      /api/auth/callback/google [GET]
func (h *handler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	code, ok := h.callbackCode(c)
	if !ok {
		return
	}

	user, err := h.uc.GoogleCallback(ctx, code)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotRegistered) {
			c.Redirect(http.StatusFound, "/?error=user_not_registered")
			return
		}
		h.l.Errorf(ctx, "uc.GoogleCallback: %v", err)
		response.InternalError(c, "Login failed", err)
		return
	}

	token, err := h.sessions.Sign(user)
	if err != nil {
		h.l.Errorf(ctx, "sessions.Sign: %v", err)
		response.InternalError(c, "Login failed", err)
		return
	}

	c.SetCookie(session.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// OutlookCallback godoc
// @Summary     Outlook OAuth callback
// @Description Links the Outlook account to the signed-in user and redirects home.
// @Tags        Auth
// @Param       code  query string true  "Authorization code"
// @Param       state query string false "CSRF state"
// @Success     302
// @Failure     400 {object} response.ErrResp "Missing code or state mismatch"
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Router      /api/auth/callback/outlook [GET]
func (h *handler) OutlookCallback(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	code, ok := h.callbackCode(c)
	if !ok {
		return
	}

	if err := h.uc.OutlookCallback(ctx, user.ID, code); err != nil {
		h.l.Errorf(ctx, "uc.OutlookCallback: %v", err)
		response.InternalError(c, "Failed to link Outlook account", err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Session godoc
// @Summary     Current session
// @Description Returns the signed-in user, or a null user when the session is absent or invalid.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/auth/session [GET]
func (h *handler) Session(c *gin.Context) {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie == "" {
		response.OK(c, sessionResp{})
		return
	}

	user, err := h.sessions.Verify(cookie)
	if err != nil {
		response.OK(c, sessionResp{})
		return
	}

	response.OK(c, sessionResp{User: &user})
}

// Logout godoc
// @Summary     Log out
// @Description Clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} logoutResp
// @Router      /api/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	response.OK(c, logoutResp{Success: true})
}

// callbackCode validates the state cookie and extracts the code. Writes the
// error response itself when validation fails.
func (h *handler) callbackCode(c *gin.Context) (string, bool) {
	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "Missing authorization code")
		return "", false
	}

	want, err := c.Cookie(stateCookie)
	if err != nil || want == "" || c.Query("state") != want {
		response.BadRequest(c, "Invalid OAuth state")
		return "", false
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	return code, true
}
