package docgraph

import "go.uber.org/zap"

// Logger is the structured logging sink the core writes to. It is
// satisfied directly by *zap.Logger's Sugar-free methods via the thin
// wrapper below, so tests can substitute zap.NewNop() or zaptest without
// docgraph depending on testing internals.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// zapLogger adapts *zap.Logger to Logger (identical method set, kept as a
// named type so call sites reading docgraph code see the dependency is
// deliberate rather than incidental).
type zapLogger struct {
	*zap.Logger
}

// NewProductionLogger builds the default Logger: JSON output, info level.
func NewProductionLogger() Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return zapLogger{zap.NewNop()}
	}
	return zapLogger{l}
}

// NewDevelopmentLogger builds a human-readable, debug-level Logger.
func NewDevelopmentLogger() Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return zapLogger{zap.NewNop()}
	}
	return zapLogger{l}
}

// NewNopLogger discards everything. Used by tests and by
// NewParallelExecutor when given a nil logger.
func NewNopLogger() Logger {
	return zapLogger{zap.NewNop()}
}
