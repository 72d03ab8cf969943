package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/murahjaya/inventory-system/internal/api/middleware"
	"github.com/murahjaya/inventory-system/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password, role string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	return s.registerFn(ctx, username, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

type stubSessionManager struct {
	started int
	ended   []string
	token   string
	err     error
}

func (s *stubSessionManager) Start(ctx context.Context, user *domain.User, remember bool) (*domain.Session, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	s.started++
	return &domain.Session{ID: "sess-1", UserID: user.ID, Username: user.Username, Role: user.Role, Remember: remember}, s.token, nil
}

func (s *stubSessionManager) End(ctx context.Context, sessionID string) error {
	s.ended = append(s.ended, sessionID)
	return nil
}

func (s *stubSessionManager) TTL(remember bool) time.Duration {
	if remember {
		return 30 * 24 * time.Hour
	}
	return 24 * time.Hour
}

func newAuthContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_ForcesCashierRole(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, role string) (*domain.User, error) {
			if role != domain.RoleCashier {
				t.Fatalf("self-registration must be cashier, got %q", role)
			}
			return &domain.User{ID: 1, Username: username, Role: role}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubSessionManager{}, false)

	c, rec := newAuthContext(http.MethodPost, "/auth/register",
		`{"username":"budi","password":"rahasia","confirm_password":"rahasia"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, role string) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubSessionManager{}, false)

	c, _ := newAuthContext(http.MethodPost, "/auth/register",
		`{"username":"budi","password":"rahasia","confirm_password":"beda"}`)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, role string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub, &stubSessionManager{}, false)

	c, _ := newAuthContext(http.MethodPost, "/auth/register",
		`{"username":"budi","password":"rahasia","confirm_password":"rahasia"}`)
	err := handler.Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			if username != "budi" || password != "rahasia" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.User{ID: 2, Username: "budi", Role: domain.RoleCashier}, nil
		},
	}
	sessions := &stubSessionManager{token: "signed-token"}
	handler := NewAuthHandler(stub, sessions, false)

	c, rec := newAuthContext(http.MethodPost, "/auth/login",
		`{"username":"budi","password":"rahasia"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sessions.started != 1 {
		t.Fatalf("expected one session start, got %d", sessions.started)
	}

	cookie := findCookie(t, rec, middleware.SessionCookie)
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
	if cookie.MaxAge != 0 {
		t.Fatalf("plain login must be a browser-session cookie, got MaxAge %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Login_RememberExtendsCookie(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return &domain.User{ID: 2, Username: "budi", Role: domain.RoleCashier}, nil
		},
	}
	sessions := &stubSessionManager{token: "signed-token"}
	handler := NewAuthHandler(stub, sessions, false)

	c, rec := newAuthContext(http.MethodPost, "/auth/login",
		`{"username":"budi","password":"rahasia","remember":true}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookie := findCookie(t, rec, middleware.SessionCookie)
	if want := int((30 * 24 * time.Hour).Seconds()); cookie.MaxAge != want {
		t.Fatalf("expected MaxAge %d, got %d", want, cookie.MaxAge)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	sessions := &stubSessionManager{}
	handler := NewAuthHandler(stub, sessions, false)

	c, rec := newAuthContext(http.MethodPost, "/auth/login",
		`{"username":"budi","password":"salah"}`)
	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessions.started != 0 {
		t.Fatal("no session may be started on bad credentials")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("no cookie may be set on bad credentials")
	}
}

func TestAuthHandler_Logout_EndsSessionAndClearsCookie(t *testing.T) {
	sessions := &stubSessionManager{}
	handler := NewAuthHandler(&stubAuthService{}, sessions, false)

	c, rec := newAuthContext(http.MethodPost, "/auth/logout", "")
	c.Set("session", &domain.Session{ID: "sess-1", UserID: 2, Username: "budi", Role: domain.RoleCashier})

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(sessions.ended) != 1 || sessions.ended[0] != "sess-1" {
		t.Fatalf("expected session sess-1 ended, got %v", sessions.ended)
	}

	cookie := findCookie(t, rec, middleware.SessionCookie)
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("cookie not cleared: value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	sessions := &stubSessionManager{}
	handler := NewAuthHandler(&stubAuthService{}, sessions, false)

	c, rec := newAuthContext(http.MethodPost, "/auth/logout", "")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(sessions.ended) != 0 {
		t.Fatalf("nothing to end, got %v", sessions.ended)
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}
