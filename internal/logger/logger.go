// Package logger builds the zap logger shared by the server, the queue
// consumer and the middleware chain.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names, so log lines can be filtered the same way across
// components.
const (
	FieldComponent  = "component"
	FieldMode       = "mode"
	FieldCount      = "count"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldRequestID  = "request_id"
	FieldDurationMS = "duration_ms"
	FieldAddress    = "address"
)

// New returns a production (JSON) logger when production is true and a
// development (console, debug level) logger otherwise.
func New(production bool) (*zap.Logger, error) {
	if production {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg.Build()
	}
	return zap.NewDevelopment()
}

// Component returns a child logger tagged with the component name.
func Component(l *zap.Logger, name string) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return l.With(zap.String(FieldComponent, name))
}
