// Package logging builds the stderr diagnostic logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the process logger. Diagnostics go to stderr in console
// format so they never mix with the result lines on stdout. Verbose mode
// lowers the threshold to debug.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
