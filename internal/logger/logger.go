package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stderr)

	// Set log level from environment or default to Info. Soft failures inside
	// the analyzer are logged at Debug, so day-to-day runs stay quiet.
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "warn":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}

	if os.Getenv("LOG_FORMAT") == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}
}

// WithFields creates a new entry with the given fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Logger.WithFields(fields)
}

// WithField creates a new entry with a single field
func WithField(key string, value interface{}) *logrus.Entry {
	return Logger.WithField(key, value)
}

// WithError creates a new entry with an error field
func WithError(err error) *logrus.Entry {
	return Logger.WithError(err)
}

// Debug logs a debug message
func Debug(msg string) {
	Logger.Debug(msg)
}

// Info logs an info message
func Info(msg string) {
	Logger.Info(msg)
}

// Warn logs a warning message
func Warn(msg string) {
	Logger.Warn(msg)
}

// Error logs an error message
func Error(msg string) {
	Logger.Error(msg)
}
