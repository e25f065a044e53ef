package executor

import "time"

// Status classifies how a single handler invocation ended. The external
// status-code contract folds Timeout and HandlerError into the same 201
// response; the split is kept here so callers that want distinct codes
// later only need to map this value.
type Status int

const (
	Success Status = iota
	Timeout
	HandlerError
)

// String returns the classification name for logging.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Timeout:
		return "timeout"
	case HandlerError:
		return "handler_error"
	default:
		return "unknown"
	}
}

// Outcome is the ephemeral result of one bounded execution.
type Outcome struct {
	Status  Status
	Payload string
	Elapsed time.Duration
}
