package app

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// ZeroLogger writes component-tagged entries through zerolog.
type ZeroLogger struct{ l zerolog.Logger }

// NewZeroLogger logs to w at level and above. Pass a zerolog.ConsoleWriter
// for human-readable output.
func NewZeroLogger(w io.Writer, level zerolog.Level) ZeroLogger {
	return ZeroLogger{l: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

func (z ZeroLogger) Infof(component string, format string, args ...interface{}) {
	z.l.Info().Str("component", component).Msgf(format, args...)
}

func (z ZeroLogger) Errorf(component string, format string, args ...interface{}) {
	z.l.Error().Str("component", component).Msgf(format, args...)
}
