package events

import "sync"

// CaptureSink records every emitted event in memory. It exists so tests
// can assert on the event stream without touching global logger state.
type CaptureSink struct {
	mu     sync.Mutex
	events []Event
}

// NewCaptureSink creates an empty capturing sink.
func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

// Emit appends the event to the in-memory record.
func (s *CaptureSink) Emit(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Events returns a copy of all recorded events in emission order.
func (s *CaptureSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// ByLevel returns recorded events matching the given level.
func (s *CaptureSink) ByLevel(level Level) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, e := range s.events {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Reset discards all recorded events.
func (s *CaptureSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
