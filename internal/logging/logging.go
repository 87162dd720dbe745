// Package logging configures the zerolog loggers used by the kinetic
// programs.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// logger fields
const (
	PROGRAM   = "program"
	COMPONENT = "component"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// New returns a console logger writing to w at the named level
// ("debug", "info", "warn", ...). An empty level means info.
func New(w io.Writer, level, program string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
		}
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str(PROGRAM, program).
		Logger(), nil
}

// Component returns a child logger tagged with component=name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(COMPONENT, name).Logger()
}
