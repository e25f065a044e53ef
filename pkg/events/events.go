package events

import "time"

// Level classifies the severity of an emitted event.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Event is a single structured log event flowing out of the dispatch
// core. Events are fire-and-forget; no return value is consumed.
type Event struct {
	Timestamp time.Time
	Level     Level
	Source    string
	Message   string
	Metadata  map[string]any
}

// Sink receives events from the parser, router, executor, and
// orchestration loop. Implementations must be safe for concurrent use.
type Sink interface {
	Emit(e Event)
}

// Emit stamps and forwards an event to the sink. A nil sink discards
// the event, so components never need to guard their emit calls.
func Emit(s Sink, level Level, source, message string, metadata map[string]any) {
	if s == nil {
		return
	}
	s.Emit(Event{
		Timestamp: time.Now(),
		Level:     level,
		Source:    source,
		Message:   message,
		Metadata:  metadata,
	})
}
