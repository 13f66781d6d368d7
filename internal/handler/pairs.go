// Package handler exposes the HTTP handlers.  This file serves the letter
// pairs themselves: the browser page, the mode list and /get_pairs.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/letter-pairs/internal/logger"
	"github.com/iliyamo/letter-pairs/internal/model"
	"github.com/iliyamo/letter-pairs/internal/pairs"
	"github.com/iliyamo/letter-pairs/internal/queue"
)

// PairResolver answers mode queries.  *pairs.Resolver satisfies it.
type PairResolver interface {
	Resolve(mode string) ([]model.Pair, error)
}

// ModeLister lists the modes that resolve to a bucket.  *pairs.Index
// satisfies it.
type ModeLister interface {
	Modes() []string
}

// EventPublisher receives one event per served /get_pairs request.
// Implementations must not block; *service.QueuePublisher only enqueues.
type EventPublisher interface {
	PublishPairsServed(ctx context.Context, ev queue.PairsServedEvent) error
}

// PairsHandler serves the read-only pair views.  Resolver and Modes are
// required; Publisher may be nil.
type PairsHandler struct {
	Resolver  PairResolver
	Modes     ModeLister
	Publisher EventPublisher
	Log       *zap.Logger
}

// NewPairsHandler constructs a PairsHandler and panics if a required
// dependency is nil.
func NewPairsHandler(r PairResolver, m ModeLister, p EventPublisher, log *zap.Logger) *PairsHandler {
	if r == nil || m == nil {
		panic("nil resolver passed to NewPairsHandler")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PairsHandler{Resolver: r, Modes: m, Publisher: p, Log: log}
}

// GetPairs returns the pairs for the :mode path segment as a JSON array of
// [key, value] arrays in random order.  Unknown modes give an empty array;
// start_/end_ modes naming a letter without a bucket give 404.
func (h *PairsHandler) GetPairs(c echo.Context) error {
	mode := c.Param("mode")
	out, err := h.Resolver.Resolve(mode)
	if err != nil {
		h.publish(c, mode, 0, false)
		if errors.Is(err, pairs.ErrBucketNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bucket not found"})
		}
		h.Log.Error("resolve failed", zap.String(logger.FieldMode, mode), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	h.publish(c, mode, len(out), true)
	return c.JSON(http.StatusOK, out)
}

// ListModes returns every mode that resolves to a bucket under "items".
func (h *PairsHandler) ListModes(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Modes.Modes()})
}

// Index serves the single page client.
func (h *PairsHandler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, indexHTML)
}

// publish hands the event to the publisher.  Any failure is logged and
// otherwise ignored.
func (h *PairsHandler) publish(c echo.Context, mode string, count int, found bool) {
	if h.Publisher == nil {
		return
	}
	ev := queue.PairsServedEvent{
		Mode:      mode,
		Count:     count,
		Found:     found,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		ServedAt:  time.Now().UTC(),
	}
	if err := h.Publisher.PublishPairsServed(c.Request().Context(), ev); err != nil {
		h.Log.Debug("publish pairs.served failed", zap.String(logger.FieldMode, ev.Mode), zap.Error(err))
	}
}
