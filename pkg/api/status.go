package api

// Status codes form the stable external contract of the orchestration
// loop. Every turn resolves to exactly one of these paired with a text
// payload; no raw error ever crosses the loop boundary.
//
// StatusActionExecuted deliberately covers true success as well as
// synthesized timeout and handler-error payloads. The executor keeps the
// three-way split internally (see executor.Outcome) so a future caller
// can split codes without re-plumbing.
const (
	// StatusNoAction means no directive was found; the payload is the
	// reasoning text verbatim and is the final answer for the turn.
	StatusNoAction = 200
	// StatusActionExecuted means a handler ran; the payload is the
	// handler result or a synthesized timeout/error message, and is fed
	// back into the reasoning process as a new input.
	StatusActionExecuted = 201
	// StatusNotFound means the named action resolved to no handler; the
	// payload is the not-found message and ends the turn.
	StatusNotFound = 404
)

// StatusText returns the outcome classification name for a status code.
func StatusText(status int) string {
	switch status {
	case StatusNoAction:
		return "NoActionFound"
	case StatusActionExecuted:
		return "ActionExecuted"
	case StatusNotFound:
		return "ActionNotFound"
	default:
		return "Unknown"
	}
}
