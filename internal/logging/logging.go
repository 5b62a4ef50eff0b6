// Package logging provides the process-wide structured logger.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu   sync.Mutex
	base *zap.SugaredLogger
)

// Init configures the process-wide logger. Level is one of debug, info,
// warn, error. Development mode switches to console-friendly output.
func Init(level string, development bool) error {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	mu.Lock()
	base = logger.Sugar()
	mu.Unlock()
	return nil
}

// Logger returns the process-wide logger. Before Init it returns a no-op
// logger, so library code may log unconditionally.
func Logger() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if base == nil {
		base = zap.NewNop().Sugar()
	}
	return base
}

// Named returns a child of the process-wide logger with the given name.
func Named(name string) *zap.SugaredLogger {
	return Logger().Named(name)
}

// NewTestLogger installs a development logger and returns it. Test suites
// call this once during setup.
func NewTestLogger() *zap.SugaredLogger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	mu.Lock()
	base = logger.Sugar()
	mu.Unlock()
	return base
}
