package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	once         sync.Once
	globalLogger *slog.Logger
)

// GetLogger returns the process-wide JSON logger.
func GetLogger() *slog.Logger {
	once.Do(func() {
		globalLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	})

	return globalLogger
}
