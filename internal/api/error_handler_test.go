package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrCategoryNotFound, http.StatusNotFound},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrDuplicate, http.StatusConflict},
		{domain.ErrSelfDeletion, http.StatusUnprocessableEntity},
		{domain.ErrUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	log := zerolog.New(io.Discard)
	handler := NewHTTPErrorHandler(log)

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["error"] == "" {
				t.Fatal("error envelope missing message")
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	log := zerolog.New(io.Discard)
	handler := NewHTTPErrorHandler(log)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/users/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(fmt.Errorf("%w: dial tcp: connection refused", domain.ErrUnavailable), c)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// the driver detail stays server-side
	if body["error"] != "service temporarily unavailable" {
		t.Fatalf("leaked internals to the client: %q", body["error"])
	}
}

func TestHTTPErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	log := zerolog.New(io.Discard)
	handler := NewHTTPErrorHandler(log)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
