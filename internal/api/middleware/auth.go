package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/junhobyun/customer-admin/internal/core/ports"
)

// Auth validates the bearer credential and injects its claims into the echo
// context. No handler behind this middleware runs without a verified token.
//
// Status split: a missing credential is 401 (the caller never authenticated),
// while a bad signature, malformed token, or expired token is 403 (the caller
// presented something, and it was refused).
func Auth(jwtSecret string, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), parts[1])
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "authorization check failed")
				}
				if revoked {
					return echo.NewHTTPError(http.StatusForbidden, "token has been revoked")
				}
			}

			c.Set("id", claims["id"])
			c.Set("username", claims["username"])
			c.Set("role", claims["role"])
			c.Set("token", parts[1])
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				c.Set("token_expiry", exp.Time)
			}

			return next(c)
		}
	}
}

// TokenExpiry returns the expiry of the verified token, if the Auth
// middleware recorded one.
func TokenExpiry(c echo.Context) (time.Time, bool) {
	exp, ok := c.Get("token_expiry").(time.Time)
	return exp, ok
}
