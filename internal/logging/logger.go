package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
)

// New monta o logger da aplicação. JSON em stdout e nível info por padrão.
func New(cfg config.LoggingConfig, app config.AppConfig) zerolog.Logger {
	return NewWithWriter(os.Stdout, cfg, app)
}

func NewWithWriter(out io.Writer, cfg config.LoggingConfig, app config.AppConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	if strings.EqualFold(strings.TrimSpace(cfg.Format), "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", app.Name).
		Str("env", app.Environment).
		Logger()
}
