// Package logging builds the zerolog logger shared by all commands.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr, so stdout stays
// reserved for rendered results. Verbose lowers the level to debug,
// which includes per-request wire diagnostics.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
