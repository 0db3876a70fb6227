package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"calendarhub/internal/middleware"
	"calendarhub/internal/model"
	"calendarhub/pkg/session"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	loginURL     string
	loginErr     error
	googleUser   session.User
	googleErr    error
	outlookErr   error
	outlookUser  string
	outlookCode  string
	googleCalled bool
}

func (m *mockUseCase) LoginURL(provider model.Provider, state string) (string, error) {
	if m.loginErr != nil {
		return "", m.loginErr
	}
	return m.loginURL + "?state=" + state, nil
}

func (m *mockUseCase) GoogleCallback(ctx context.Context, code string) (session.User, error) {
	m.googleCalled = true
	return m.googleUser, m.googleErr
}

func (m *mockUseCase) OutlookCallback(ctx context.Context, userID, code string) error {
	m.outlookUser = userID
	m.outlookCode = code
	return m.outlookErr
}

func newTestRouter(t *testing.T, uc *mockUseCase) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager("test-secret", 0)
	mw := middleware.New(&mockLogger{}, middleware.Config{Sessions: sessions})
	h := New(&mockLogger{}, uc, sessions)

	r := gin.New()
	RegisterRoutes(r.Group("/api/auth"), h, mw)
	return r, sessions
}

func TestLoginRedirectsWithState(t *testing.T) {
	uc := &mockUseCase{loginURL: "https://accounts.example.com/authorize"}
	r, _ := newTestRouter(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/login/google", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://accounts.example.com/authorize?state=") {
		t.Errorf("unexpected redirect target %s", loc)
	}

	var state string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == stateCookie {
			state = ck.Value
		}
	}
	if state == "" {
		t.Fatal("expected state cookie")
	}
	if !strings.HasSuffix(loc, state) {
		t.Error("redirect state must match the cookie")
	}
}

func TestGoogleCallbackSignsSession(t *testing.T) {
	uc := &mockUseCase{googleUser: session.User{ID: "user_1", Email: "jo@example.com"}}
	r, sessions := newTestRouter(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback/google?code=abc&state=s1", nil)
	req.AddCookie(&http.Cookie{Name: stateCookie, Value: "s1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %s", loc)
	}

	var token string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName {
			token = ck.Value
		}
	}
	if token == "" {
		t.Fatal("expected session cookie")
	}
	user, err := sessions.Verify(token)
	if err != nil {
		t.Fatalf("verify issued session: %v", err)
	}
	if user.ID != "user_1" {
		t.Errorf("unexpected session user %+v", user)
	}
}

func TestGoogleCallbackStateMismatch(t *testing.T) {
	uc := &mockUseCase{}
	r, _ := newTestRouter(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback/google?code=abc&state=evil", nil)
	req.AddCookie(&http.Cookie{Name: stateCookie, Value: "s1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if uc.googleCalled {
		t.Error("use case must not run on a state mismatch")
	}
}

func TestOutlookCallbackRequiresSession(t *testing.T) {
	uc := &mockUseCase{}
	r, _ := newTestRouter(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback/outlook?code=abc&state=s1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestOutlookCallbackLinksAccount(t *testing.T) {
	uc := &mockUseCase{}
	r, sessions := newTestRouter(t, uc)

	token, err := sessions.Sign(session.User{ID: "user_1"})
	if err != nil {
		t.Fatalf("sign session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback/outlook?code=ol-code&state=s1", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	req.AddCookie(&http.Cookie{Name: stateCookie, Value: "s1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", w.Code, w.Body.String())
	}
	if uc.outlookUser != "user_1" || uc.outlookCode != "ol-code" {
		t.Errorf("unexpected callback args: user=%s code=%s", uc.outlookUser, uc.outlookCode)
	}
}

func TestSessionEndpoint(t *testing.T) {
	uc := &mockUseCase{}
	r, sessions := newTestRouter(t, uc)

	// No cookie: null user, still 200.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"user":null`) {
		t.Errorf("expected null user, got %s", w.Body.String())
	}

	// Valid cookie: the session user.
	token, err := sessions.Sign(session.User{ID: "user_1", Name: "Jo"})
	if err != nil {
		t.Fatalf("sign session: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body sessionResp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.User == nil || body.User.ID != "user_1" {
		t.Errorf("unexpected session body: %+v", body.User)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	uc := &mockUseCase{}
	r, _ := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var cleared bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie to be expired")
	}
}
