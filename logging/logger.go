// Package logging provides the *zap.Logger used by greedytable
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// logger holds the package-level logger instance for debug output.
// Defaults to nil, which causes Logger() to return a no-op logger.
var logger atomic.Pointer[zap.Logger]

// SetLogger configures the package-level logger for debug output.
// Pass nil to disable logging.
//
// SetLogger is safe for concurrent use.
//
// Example enabling debug output:
//
//	l, _ := zap.NewDevelopment()
//	logging.SetLogger(l)
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Logger returns the package-level logger, or a no-op logger if none has
// been set.
//
// Logger is safe for concurrent use.
func Logger() *zap.Logger {
	l := logger.Load()
	if l == nil {
		l = zap.NewNop()
		logger.CompareAndSwap(nil, l)
		return logger.Load()
	}
	return l
}
