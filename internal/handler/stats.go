package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/letter-pairs/internal/model"
)

// maxStatsLimit caps ?limit on /v1/stats.
const maxStatsLimit = 500

// StatsReader aggregates stored queries.  *repository.PairQueryRepo
// satisfies it.
type StatsReader interface {
	ModeStats(ctx context.Context, limit int) ([]model.ModeStat, error)
}

// StatsHandler serves the admin-only request statistics.
type StatsHandler struct {
	Repo StatsReader
	Log  *zap.Logger
}

// GetStats returns per-mode counts under "items".  Optional ?limit=N
// (1..500) keeps the N busiest modes.
func (h *StatsHandler) GetStats(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxStatsLimit {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
		limit = n
	}
	stats, err := h.Repo.ModeStats(c.Request().Context(), limit)
	if err != nil {
		if h.Log != nil {
			h.Log.Error("load mode stats", zap.Error(err))
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": stats})
}
