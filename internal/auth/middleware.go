package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"notesapi/internal/errors"
)

// ContextUserKey is the echo context key under which verified claims are stored.
const ContextUserKey = "user"

// RequireAuth gates every route registered behind it on a valid bearer token.
// A missing header, a non-Bearer scheme, and a failed token verification are
// three distinct rejections; each short-circuits before the downstream handler
// runs, so no resource access happens for an unauthenticated request.
func RequireAuth(jwtService *JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "authorization header is required",
					Code:  "AUTH_HEADER_MISSING",
				})
			}

			// Split on the first space only: the credential may not contain one.
			scheme, credential, _ := strings.Cut(header, " ")
			if scheme != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "authorization scheme must be Bearer",
					Code:  "MALFORMED_AUTH_SCHEME",
				})
			}

			claims, err := jwtService.ValidateToken(credential)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid or expired token",
					Code:  "INVALID_TOKEN",
				})
			}

			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}
