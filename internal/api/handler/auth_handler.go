package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/murahjaya/inventory-system/internal/api/metrics"
	"github.com/murahjaya/inventory-system/internal/api/middleware"
	"github.com/murahjaya/inventory-system/internal/core/domain"
	"github.com/murahjaya/inventory-system/internal/core/ports"
)

// AuthHandler owns login, logout, and self-registration.
type AuthHandler struct {
	authService   ports.AuthService
	sessions      ports.SessionManager
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionManager, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessions:      sessions,
		secureCookies: secureCookies,
	}
}

type registerRequest struct {
	Username        string `json:"username" form:"username" validate:"required"`
	Password        string `json:"password" form:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Remember bool   `json:"remember" form:"remember"`
}

type sessionResponse struct {
	User *domain.User `json:"user"`
}

// Register creates a new cashier account. Self-registration never grants the
// admin role; only an existing admin can via the user management routes.
//
// @Summary      Register a new cashier account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, domain.RoleCashier)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sessionResponse{User: user})
}

// Login verifies credentials and issues the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	_, token, err := h.sessions.Start(c.Request().Context(), user, req.Remember)
	if err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(token, req.Remember))
	return c.JSON(http.StatusOK, sessionResponse{User: user})
}

// Logout destroys the session and clears the cookie. Safe to call without a
// session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if session := middleware.SessionFrom(c); session != nil {
		if err := h.sessions.End(c.Request().Context(), session.ID); err != nil {
			return err
		}
	}
	c.SetCookie(h.expiredCookie())
	return c.NoContent(http.StatusNoContent)
}

// sessionCookie aligns cookie expiry with the server-side session lifetime.
// Without remember it is a browser-session cookie (MaxAge 0).
func (h *AuthHandler) sessionCookie(token string, remember bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		cookie.MaxAge = int(h.sessions.TTL(true).Seconds())
	}
	return cookie
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
