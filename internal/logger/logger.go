package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spotlight-dating/spotlight-backend/internal/config"
)

// New builds the application logger. Unknown levels fall back to info.
func New(cfg *config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
