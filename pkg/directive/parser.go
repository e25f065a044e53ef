package directive

import (
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"reactor/pkg/events"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// commandPattern recognizes the two directive forms, anchored at the
// start of the input. Only the leading match counts; directives
// appearing mid-string are not detected. The (?i) flag case-folds the
// keywords while captured groups keep their original text, and (?s)
// lets the parameter literal span multiple lines.
var commandPattern = regexp.MustCompile(`(?is)^use (tool|capability):([A-Za-z0-9_]+)\s+(\{.*)$`)

// Parser extracts an optional Directive from free-form reasoning text.
//
// The parameter literal is decoded with a strict JSON parser and
// nothing else. The reference implementation evaluated the literal as
// code, which is an injection surface; anything that is not a single
// valid JSON object is rejected here.
type Parser struct {
	sink events.Sink
}

// NewParser creates a parser that reports literal parse failures to the
// given sink.
func NewParser(sink events.Sink) *Parser {
	return &Parser{sink: sink}
}

// Parse returns the directive found at the start of the reasoning text,
// or ok=false when the text requests no action. A recognized prefix
// with a malformed parameter literal also yields ok=false, after a
// warning event carrying the parse error: the turn then degrades to the
// plain-answer path instead of failing.
func (p *Parser) Parse(reasoning string) (*Directive, bool) {
	m := commandPattern.FindStringSubmatch(reasoning)
	if m == nil {
		return nil, false
	}

	typ := Type(strings.ToLower(m[1]))
	name := m[2]
	literal := m[3]

	var params map[string]any
	if err := json.Unmarshal([]byte(literal), &params); err != nil {
		events.Emit(p.sink, events.LevelWarning, "parser", "failed to parse action parameters", map[string]any{
			"action": name,
			"type":   string(typ),
			"error":  err.Error(),
		})
		return nil, false
	}

	return &Directive{
		Type:      typ,
		Name:      name,
		Params:    params,
		RawParams: literal,
	}, true
}
