package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-system/internal/api/handler"
	"github.com/contactdesk/contacts-system/internal/core/domain"
)

func invokeErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_FieldErrorsRenderAsFieldMap(t *testing.T) {
	rec := invokeErrorHandler(t, &handler.FieldErrors{Fields: map[string]string{
		"firstName":    "firstName is required",
		"emailOrPhone": "either an email address or a phone number is required",
	}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["firstName"] != "firstName is required" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["emailOrPhone"]; !ok {
		t.Fatalf("expected emailOrPhone key, got %v", body)
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("field map must not carry an error envelope, got %v", body)
	}
}

func TestErrorHandler_DomainErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTooManyLoginAttempts, http.StatusTooManyRequests},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrContactNotFound, http.StatusNotFound},
		{domain.ErrAdminPasswordRequired, http.StatusBadRequest},
		{domain.ErrAdminPasswordIncorrect, http.StatusBadRequest},
	}

	for _, tc := range cases {
		rec := invokeErrorHandler(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["error"] == "" {
			t.Errorf("%v: expected error envelope, got %v", tc.err, body)
		}
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec := invokeErrorHandler(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestErrorHandler_UnexpectedErrorHidesDetails(t *testing.T) {
	rec := invokeErrorHandler(t, errors.New("mongo: socket closed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details leaked: %v", body)
	}
}
