package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "declutter/internal/errors"
)

// contextKey is where RequireAuth stores the validated *Claims.
const contextKey = "claims"

// RequireAuth returns middleware that accepts the raw Authorization header
// value as the token. A missing header answers 401, anything that fails
// validation answers 403.
func RequireAuth(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  contextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Message: "token is missing",
					Code:    "TOKEN_MISSING",
				}).SetInternal(err)
			}
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Message: "token is invalid",
				Code:    "TOKEN_INVALID",
			}).SetInternal(err)
		},
	})
}

// Identity returns the email of the authenticated caller, or "" when the
// request did not pass through RequireAuth.
func Identity(c echo.Context) string {
	claims, ok := c.Get(contextKey).(*Claims)
	if !ok {
		return ""
	}
	return claims.Email
}
