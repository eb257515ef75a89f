package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
	"github.com/fuelquote/fuel-quote-api/internal/core/ports"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session_token"

// Session resolves the request's session token against server-side session
// state and injects the account identity into the echo context. Requests with
// no token, or a token that is unknown, revoked, or expired, are rejected
// with 401 before any handler runs.
func Session(sessions ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			accountID, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
				}
				return err
			}

			c.Set("account_id", accountID)
			c.Set("session_token", token)

			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token from the session cookie, with
// an Authorization bearer fallback for non-browser clients.
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
