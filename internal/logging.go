package internal

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the global zerolog logger. format is "json" or
// "console"; unknown levels fall back to info.
func InitLogging(format, level string) {
	var out io.Writer = os.Stdout
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
