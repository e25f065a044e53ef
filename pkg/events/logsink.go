package events

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogSink writes events through a zerolog logger. It is the default
// sink wired in by the CLI; tests substitute a CaptureSink instead.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a sink over an existing zerolog logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// NewConsoleSink creates a sink that writes human-readable output to w
// at the given minimum level ("debug", "info", "warn", "error").
func NewConsoleSink(w io.Writer, level string) *LogSink {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	logger := zerolog.New(console).Level(lvl).With().Timestamp().Logger()
	return &LogSink{logger: logger}
}

// Emit writes the event at its mapped zerolog level, carrying the
// source and metadata as structured fields.
func (s *LogSink) Emit(e Event) {
	var ev *zerolog.Event
	switch e.Level {
	case LevelError:
		ev = s.logger.Error()
	case LevelWarning:
		ev = s.logger.Warn()
	default:
		ev = s.logger.Info()
	}
	ev.Str("source", e.Source)
	if len(e.Metadata) > 0 {
		ev.Fields(e.Metadata)
	}
	ev.Msg(e.Message)
}
