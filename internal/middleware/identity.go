package middleware

// identity.go resolves who made a request for log lines.  Pair lookups are
// anonymous; only admin routes carry a JWT.

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorID returns the JWT subject stored by JWTAuth, or "guest".
func actorID(c echo.Context) string {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return "guest"
	}
	if cl, ok := tok.Claims.(jwt.MapClaims); ok {
		if v, err := cl.GetSubject(); err == nil && v != "" {
			return v
		}
	}
	return "guest"
}
