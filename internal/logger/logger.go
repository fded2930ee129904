package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// Usable before InitLogging runs (e.g. in tests).
	log = newLogger(os.Stdout)
}

// InitLogging configures the process logger: console output, plus an append
// log file when filePath is non-empty.
func InitLogging(filePath string) {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}}
	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Error().Err(err).Str("path", filePath).Msg("failed to open log file, console only")
		} else {
			writers = append(writers, file)
		}
	}
	log = newLogger(zerolog.MultiLevelWriter(writers...))
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

func DebugLog(ctx context.Context, format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}

func InfoLog(ctx context.Context, format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

func WarnLog(ctx context.Context, format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

func ErrorLog(ctx context.Context, format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}
