// Package logging configures zerolog for the process. Every component gets a
// child logger tagged with its name so backup-path failures, which are logged
// and swallowed, can still be traced to their source.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a component logger. Development builds log human-readable
// output at debug level; production logs JSON at info level.
func New(component, env string) zerolog.Logger {
	level := zerolog.DebugLevel
	if env == "production" {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stderr)
	if env != "production" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return logger.Level(level).With().
		Timestamp().
		Str("component", component).
		Logger()
}
