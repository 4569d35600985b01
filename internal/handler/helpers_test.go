package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"declutter/internal/auth"
	apperrors "declutter/internal/errors"
)

const testSecret = "handler-test-secret"

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

// newTestEcho returns an echo instance with validation and the auth
// middleware that protected routes use.
func newTestEcho() (*echo.Echo, echo.MiddlewareFunc) {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e, auth.RequireAuth(auth.NewJWTService(testSecret))
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).GenerateToken(email)
	require.NoError(t, err)
	return token
}

// do sends a request; an empty token sends no Authorization header.
func do(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
