package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/murahjaya/inventory-system/internal/api/middleware"
	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware and
// performs a fast-fail check before any service call: the guards should have
// rejected the request already, so an absent session here means a route was
// wired without its guard.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session := middleware.SessionFrom(c)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session, nil
}
