package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/murahjaya/inventory-system/internal/api/metrics"
	"github.com/murahjaya/inventory-system/internal/core/domain"
	"github.com/murahjaya/inventory-system/internal/core/ports"
)

const sessionContextKey = "session"

// Short-circuit targets for the guards. The guards only ever signal where to
// go; any flash text or page rendering belongs to whatever serves those routes.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Session resolves the session cookie into a domain.Session and injects it into
// the request context. A missing, invalid, or expired session leaves the
// context empty; the guards decide what that means per route.
func Session(store ports.SessionStore, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sessionID, err := ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return next(c)
			}

			session, err := store.Get(c.Request().Context(), sessionID)
			if err != nil {
				return next(c)
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// SessionFrom returns the resolved session, or nil when unauthenticated.
func SessionFrom(c echo.Context) *domain.Session {
	session, _ := c.Get(sessionContextKey).(*domain.Session)
	return session
}

// RequireAuth short-circuits unauthenticated requests with a redirect to the
// login page. The wrapped handler is never invoked on a short-circuit.
func RequireAuth() echo.MiddlewareFunc {
	return guard(false)
}

// RequireAdmin composes RequireAuth with an admin role check. A logged-in
// non-admin is sent back to the dashboard, a distinct signal from the
// not-authenticated case.
func RequireAdmin() echo.MiddlewareFunc {
	return guard(true)
}

func guard(adminOnly bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch domain.Authorize(SessionFrom(c), adminOnly) {
			case domain.RedirectLogin:
				metrics.GuardRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return c.Redirect(http.StatusSeeOther, LoginPath)
			case domain.RedirectDashboard:
				metrics.GuardRejectionsTotal.WithLabelValues("not_admin").Inc()
				return c.Redirect(http.StatusSeeOther, DashboardPath)
			}
			return next(c)
		}
	}
}
