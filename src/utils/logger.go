package utils

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

const loggerKey = contextKey("logger")

// NewLogger initializes the process-wide structured logger.
func NewLogger(logLevel logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logLevel)
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

func WithLogger(ctx context.Context, logger *logrus.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func LoggerFromContext(ctx context.Context) *logrus.Logger {
	logger, ok := ctx.Value(loggerKey).(*logrus.Logger)
	if !ok {
		defaultLogger := logrus.New()
		defaultLogger.SetLevel(logrus.InfoLevel)
		defaultLogger.SetFormatter(&logrus.TextFormatter{})
		return defaultLogger
	}
	return logger
}
