package logger

import (
	"io"
	"os"
	"prisoners-dilemma/internal/config"

	"github.com/rs/zerolog"
)

// New writes to stderr so the report on stdout stays clean. LOG_LEVEL is
// checked by config.Validate; an empty level means info.
func New(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return SetLevel(os.Stderr, level)
}

func SetLevel(w io.Writer, level zerolog.Level) zerolog.Logger {
	logger := zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(level)

	return logger
}
