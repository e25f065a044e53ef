package directive

import "strings"

// Type tags the handler family a directive addresses.
type Type string

const (
	TypeTool       Type = "tool"
	TypeCapability Type = "capability"
)

// Title returns the capitalized family name used in user-facing
// messages, e.g. "Tool 'missing' not found."
func (t Type) Title() string {
	if len(t) == 0 {
		return ""
	}
	return strings.ToUpper(string(t[0])) + string(t[1:])
}

// Directive is a structured instruction extracted from reasoning text.
// It is only ever constructed from input that satisfied every
// constraint: an absent directive is indistinguishable from "no action
// requested". Name and parameters retain their original casing; only
// the directive keywords are matched case-insensitively.
type Directive struct {
	Type Type
	// Name is the bare identifier of the requested handler.
	Name string
	// Params is the decoded parameter object.
	Params map[string]any
	// RawParams is the original literal text, retained for logging.
	RawParams string
}
