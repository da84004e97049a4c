// Package logger wraps zap behind package-level helpers. Logging is off
// unless Init is called with a file path; the CLI stays silent on stdout
// so generated output can be piped.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Init initializes the logger. With a file path, entries go to the file
// as JSON; without one, entries go to stdout/stderr.
func Init(debugEnabled bool, logFilePath string) error {
	level := zapcore.InfoLevel
	if debugEnabled {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if logFilePath != "" {
		config.OutputPaths = []string{logFilePath}
		config.ErrorOutputPaths = []string{logFilePath + ".err"}
	}

	var err error
	logger, err = config.Build()
	return err
}

// Close flushes any buffered log entries.
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Debug(msg, fields...)
	}
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Warn(msg, fields...)
	}
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Error(msg, fields...)
	}
}

// Err creates an error field.
func Err(err error) zap.Field {
	return zap.Error(err)
}

// String creates a string field.
func String(key string, value string) zap.Field {
	return zap.String(key, value)
}

// Int creates an int field.
func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// Bool creates a bool field.
func Bool(key string, value bool) zap.Field {
	return zap.Bool(key, value)
}
