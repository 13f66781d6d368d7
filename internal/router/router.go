package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/letter-pairs/internal/handler"
	"github.com/iliyamo/letter-pairs/internal/middleware"
	"github.com/iliyamo/letter-pairs/internal/utils"
)

// RegisterRoutes registers the health check on the provided Echo instance.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPairs registers the public, unauthenticated pair routes.  limit
// wraps /get_pairs only; the page and mode list are static.
func RegisterPairs(e *echo.Echo, h *handler.PairsHandler, limit echo.MiddlewareFunc) {
	e.GET("/", h.Index)
	e.GET("/v1/modes", h.ListModes)
	e.GET("/get_pairs/:mode", h.GetPairs, limit)
}

// RegisterAdmin registers the stats routes under /v1 behind an ADMIN JWT.
// cache runs after authentication so cached bodies are never served to
// anonymous callers.
func RegisterAdmin(e *echo.Echo, s *handler.StatsHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(utils.RoleAdmin),
	)
	g.GET("/stats", s.GetStats, cache)
}
