package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reactor/pkg/events"
)

func TestParser_ToolDirective(t *testing.T) {
	p := NewParser(events.NewCaptureSink())

	d, ok := p.Parse(`use tool:echo {"msg": "hi"}`)
	require.True(t, ok)
	assert.Equal(t, TypeTool, d.Type)
	assert.Equal(t, "echo", d.Name)
	assert.Equal(t, map[string]any{"msg": "hi"}, d.Params)
	assert.Equal(t, `{"msg": "hi"}`, d.RawParams)
}

func TestParser_CapabilityDirective(t *testing.T) {
	p := NewParser(events.NewCaptureSink())

	d, ok := p.Parse(`use capability:catalog {"query": "github"}`)
	require.True(t, ok)
	assert.Equal(t, TypeCapability, d.Type)
	assert.Equal(t, "catalog", d.Name)
	assert.Equal(t, map[string]any{"query": "github"}, d.Params)
}

func TestParser_KeywordCaseInsensitive(t *testing.T) {
	p := NewParser(events.NewCaptureSink())

	d, ok := p.Parse(`USE TOOL:MyTool {"Key": "Value"}`)
	require.True(t, ok)
	assert.Equal(t, TypeTool, d.Type)
	// The action name and parameters keep their original casing; only
	// the keywords are case-folded.
	assert.Equal(t, "MyTool", d.Name)
	assert.Equal(t, map[string]any{"Key": "Value"}, d.Params)
}

func TestParser_NoDirective(t *testing.T) {
	p := NewParser(events.NewCaptureSink())

	tests := []struct {
		name  string
		input string
	}{
		{"plain answer", "The capital of France is Paris."},
		{"mid-string directive not detected", `I think I should use tool:echo {"msg": "hi"}`},
		{"missing whitespace before literal", `use tool:echo{"msg": "hi"}`},
		{"missing literal", "use tool:echo"},
		{"literal not an object", `use tool:echo [1, 2]`},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := p.Parse(tt.input)
			assert.False(t, ok)
			assert.Nil(t, d)
		})
	}
}

func TestParser_NoPrefixEmitsNoEvent(t *testing.T) {
	sink := events.NewCaptureSink()
	p := NewParser(sink)

	_, ok := p.Parse("just a plain answer")
	require.False(t, ok)
	assert.Empty(t, sink.Events())
}

func TestParser_MalformedLiteral(t *testing.T) {
	sink := events.NewCaptureSink()
	p := NewParser(sink)

	// Trailing comma is invalid JSON; a code evaluator would have
	// accepted it, the strict parser must not.
	d, ok := p.Parse(`use tool:echo {"a": 1,}`)
	assert.False(t, ok)
	assert.Nil(t, d)

	warnings := sink.ByLevel(events.LevelWarning)
	require.Len(t, warnings, 1)
	assert.Equal(t, "parser", warnings[0].Source)
	assert.Equal(t, "echo", warnings[0].Metadata["action"])
	assert.NotEmpty(t, warnings[0].Metadata["error"])
}

func TestParser_TrailingGarbageRejected(t *testing.T) {
	sink := events.NewCaptureSink()
	p := NewParser(sink)

	// The literal is the whole remainder of the input and must be a
	// single JSON object.
	_, ok := p.Parse(`use tool:echo {"msg": "hi"} and then some`)
	assert.False(t, ok)
	assert.Len(t, sink.ByLevel(events.LevelWarning), 1)
}

func TestParser_MultilineLiteral(t *testing.T) {
	p := NewParser(events.NewCaptureSink())

	d, ok := p.Parse("use tool:echo {\n  \"msg\": \"hi\"\n}")
	require.True(t, ok)
	assert.Equal(t, "hi", d.Params["msg"])
}

func TestParser_NestedObjectParams(t *testing.T) {
	p := NewParser(events.NewCaptureSink())

	d, ok := p.Parse(`use capability:catalog {"filter": {"kind": "tool"}, "limit": 3}`)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"kind": "tool"}, d.Params["filter"])
	assert.Equal(t, float64(3), d.Params["limit"])
}

func TestTypeTitle(t *testing.T) {
	assert.Equal(t, "Tool", TypeTool.Title())
	assert.Equal(t, "Capability", TypeCapability.Title())
}
