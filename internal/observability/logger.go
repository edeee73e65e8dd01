package observability

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It is a no-op until InitLogger runs so
// packages and tests can log before (or without) initialisation.
var Logger = zap.NewNop()

// InitLogger installs a JSON production logger at the level named by
// LOG_LEVEL (debug, info, warn, error; default info).
func InitLogger() error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(levelFromEnv())

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Logger = logger
	return nil
}

// SyncLogger flushes buffered entries; call it on shutdown.
func SyncLogger() {
	_ = Logger.Sync()
}

func levelFromEnv() zapcore.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx. Without a valid span it returns
// Logger unchanged.
//
// ctx itself is attached as a zap.Any("context", ctx) field. When OTLP log
// export is on (InitLogging), the otelzap core scans fields for a value that
// implements context.Context and passes it to log.Logger.Emit. The SDK then
// fills the native TraceID and SpanID of the exported record from the span in
// that context, which is what log backends use to jump from a log line to its
// trace. Emitted with context.Background(), those IDs would be all zeros and
// only the string attributes below would link the two.
//
// The trace_id / span_id string fields stay on every entry so the stdout JSON
// remains greppable without an OTel-aware tool.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		// Read by otelzap's core when converting fields; sets the Emit context.
		zap.Any("context", ctx),
		// Human-readable fields for stdout JSON and ad-hoc grepping.
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
