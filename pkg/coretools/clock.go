package coretools

import (
	"context"
	"time"
)

// ClockTool reports the current time, optionally in a caller-supplied
// Go layout string.
type ClockTool struct {
	// Now allows tests to pin the clock; nil means time.Now.
	Now func() time.Time
}

func (ClockTool) Name() string        { return "clock" }
func (ClockTool) Description() string { return "Returns the current time, RFC3339 by default." }

func (ClockTool) ParameterSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"format": map[string]any{
				"type":        "string",
				"description": "Go time layout to format with",
			},
		},
		"additionalProperties": false,
	}
}

func (t ClockTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	layout := time.RFC3339
	if f, ok := params["format"].(string); ok && f != "" {
		layout = f
	}
	return now().Format(layout), nil
}
