package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

type ctxKey struct{}

// Initialize sets up the global logger with the given log level.
// Timestamps are written as ISO-8601 so they line up with the ledger's stored timestamps.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := cfg.Build(zap.Fields(zap.String("service", "stripe-ledger")))
	if err != nil {
		return err
	}

	Log = built.Sugar()
	return nil
}

// WithContext returns a copy of ctx carrying a logger derived from Log with the
// given key-value pairs attached.
func WithContext(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey{}, FromContext(ctx).With(keysAndValues...))
}

// FromContext returns the logger stored by WithContext, or Log.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		return l
	}
	return Log
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
