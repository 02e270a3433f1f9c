// Package logging builds the zerolog logger used for debug output.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"todo/internal/config"
)

// New returns a console logger writing to w when debug is set,
// and a disabled logger otherwise.
func New(w io.Writer, debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(cw).With().
		Timestamp().
		Str("service", config.AppName).
		Logger().
		Level(zerolog.DebugLevel)
}
