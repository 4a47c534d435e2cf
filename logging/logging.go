package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger zerolog.Logger
	once   sync.Once
)

// Get returns the process-wide logger. Set NO_DEBUG to drop debug output and
// LOG_FILE to additionally write rotated JSON logs to a file.
func Get() zerolog.Logger {
	once.Do(func() {
		logLevel := zerolog.DebugLevel
		if os.Getenv("NO_DEBUG") != "" {
			logLevel = zerolog.InfoLevel
		}

		console := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}

		var out io.Writer = console
		if logFile := os.Getenv("LOG_FILE"); logFile != "" {
			fileLogger := &lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    100,  // MB
				MaxBackups: 7,    // Keep 7 old log files
				MaxAge:     30,   // Days
				Compress:   true, // Compress old log files
			}
			out = io.MultiWriter(console, fileLogger)
		}

		logger = zerolog.New(out).Level(logLevel).With().Timestamp().Caller().Logger()
	})

	return logger
}
