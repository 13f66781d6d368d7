package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iliyamo/letter-pairs/internal/logger"
)

// RequestLogger writes one line per request.  5xx log at error level, 4xx
// at warn, the rest at info.  Mount it after echo's RequestID middleware so
// the id is available.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			level := zapcore.InfoLevel
			switch {
			case status >= 500:
				level = zapcore.ErrorLevel
			case status >= 400:
				level = zapcore.WarnLevel
			}
			fields := []zap.Field{
				zap.String(logger.FieldMethod, c.Request().Method),
				zap.String(logger.FieldPath, c.Request().URL.Path),
				zap.Int(logger.FieldStatus, status),
				zap.Int64(logger.FieldDurationMS, time.Since(start).Milliseconds()),
				zap.String(logger.FieldRequestID, c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("actor", actorID(c)),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			log.Log(level, "request", fields...)
			return nil
		}
	}
}
