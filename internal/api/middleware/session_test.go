package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func (s *stubSessionStore) Create(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *stubSessionStore) Delete(ctx context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func signTestToken(t *testing.T, secret, sessionID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newGuardedContext(t *testing.T, store *stubSessionStore, secret, cookie string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// run the resolver first, as the router does
	resolved := false
	err := Session(store, secret)(func(echo.Context) error {
		resolved = true
		return nil
	})(c)
	if err != nil || !resolved {
		t.Fatalf("session resolver failed: %v", err)
	}
	return c, rec
}

func TestRequireAuth_NoSessionRedirectsToLogin(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}
	c, rec := newGuardedContext(t, store, "secret", "")

	calls := 0
	err := RequireAuth()(func(echo.Context) error {
		calls++
		return nil
	})(c)
	if err != nil {
		t.Fatalf("guard error: %v", err)
	}

	if calls != 0 {
		t.Fatalf("handler must not run, got %d calls", calls)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != LoginPath {
		t.Fatalf("expected redirect to %s, got %s", LoginPath, loc)
	}
}

func TestRequireAdmin_CashierRedirectsToDashboard(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{
		"sess-1": {ID: "sess-1", UserID: 2, Username: "budi", Role: domain.RoleCashier},
	}}
	token := signTestToken(t, "secret", "sess-1")
	c, rec := newGuardedContext(t, store, "secret", token)

	calls := 0
	err := RequireAdmin()(func(echo.Context) error {
		calls++
		return nil
	})(c)
	if err != nil {
		t.Fatalf("guard error: %v", err)
	}

	if calls != 0 {
		t.Fatalf("handler must not run, got %d calls", calls)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != DashboardPath {
		t.Fatalf("expected redirect to %s, got %s", DashboardPath, loc)
	}
}

func TestRequireAdmin_AdminInvokedOnce(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{
		"sess-1": {ID: "sess-1", UserID: 1, Username: "siti", Role: domain.RoleAdmin},
	}}
	token := signTestToken(t, "secret", "sess-1")
	c, _ := newGuardedContext(t, store, "secret", token)

	calls := 0
	err := RequireAdmin()(func(c echo.Context) error {
		calls++
		session := SessionFrom(c)
		if session == nil || session.Username != "siti" {
			t.Fatalf("handler sees wrong session: %+v", session)
		}
		return nil
	})(c)
	if err != nil {
		t.Fatalf("guard error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one invocation, got %d", calls)
	}
}

func TestRequireAuth_CashierProceeds(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{
		"sess-1": {ID: "sess-1", UserID: 2, Username: "budi", Role: domain.RoleCashier},
	}}
	token := signTestToken(t, "secret", "sess-1")
	c, _ := newGuardedContext(t, store, "secret", token)

	calls := 0
	if err := RequireAuth()(func(echo.Context) error { calls++; return nil })(c); err != nil {
		t.Fatalf("guard error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one invocation, got %d", calls)
	}
}

func TestSession_ForgedTokenLeavesContextEmpty(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{
		"sess-1": {ID: "sess-1", UserID: 1, Username: "siti", Role: domain.RoleAdmin},
	}}
	forged := signTestToken(t, "wrong-secret", "sess-1")
	c, _ := newGuardedContext(t, store, "secret", forged)

	if session := SessionFrom(c); session != nil {
		t.Fatalf("forged token resolved a session: %+v", session)
	}
}

func TestSession_UnknownSessionIDLeavesContextEmpty(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]*domain.Session{}}
	token := signTestToken(t, "secret", "expired-session")
	c, _ := newGuardedContext(t, store, "secret", token)

	if session := SessionFrom(c); session != nil {
		t.Fatalf("stale token resolved a session: %+v", session)
	}
}

func TestParseSessionToken_RejectsWrongAlgorithm(t *testing.T) {
	// alg "none" style tokens must never pass
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "sess-1"})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseSessionToken("secret", raw); err == nil {
		t.Fatal("unsigned token accepted")
	}
}
