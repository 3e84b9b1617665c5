// Package logger provides the diagnostic channel for vision-report.
//
// Diagnostics go to stderr with a consistent "visionreport" prefix so that
// library output is distinguishable from the host application's own logging.
// Report generation itself never fails because of a diagnostic; warnings
// describe degraded units (missing media, unwritable paths) after the fact.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.Mutex
	sugar *zap.SugaredLogger
)

// Init replaces the default logger. Verbose enables debug-level output.
func Init(verbose bool) {
	mu.Lock()
	defer mu.Unlock()

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	sugar = newLogger(level)
}

func newLogger(level zapcore.Level) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core).Named("visionreport").Sugar()
}

// get lazily builds the default logger on first use.
func get() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if sugar == nil {
		sugar = newLogger(zapcore.InfoLevel)
	}
	return sugar
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	get().Debugf(format, args...)
}

// Info logs an info message.
func Info(format string, args ...interface{}) {
	get().Infof(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	get().Warnf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	get().Errorf(format, args...)
}

// Sync flushes buffered output. Safe to call at process exit.
func Sync() {
	_ = get().Sync()
}
