package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger on stderr. Generated code summaries are written
// to stdout, so logs never mix with them.
func New(app string, verbose bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, app, verbose)
}

func NewWithWriter(w io.Writer, app string, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
}
