package simdtestgen

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/simd-testgen/wast"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger. It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package logger and the scanner's logger.
// This must be called before Generate.
func SetLogger(l *zap.Logger) {
	logger = l
	wast.SetLogger(l)
}
