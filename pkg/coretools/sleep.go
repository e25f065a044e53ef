package coretools

import (
	"context"
	"fmt"
	"time"
)

// SleepTool blocks for the requested number of milliseconds. It honors
// context cancellation, which makes it useful for exercising the
// executor's deadline path.
type SleepTool struct{}

func (SleepTool) Name() string        { return "sleep" }
func (SleepTool) Description() string { return "Blocks for ms milliseconds, then reports back." }

func (SleepTool) ParameterSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ms": map[string]any{
				"type":        "integer",
				"description": "Milliseconds to sleep",
				"minimum":     0,
			},
		},
		"required":             []string{"ms"},
		"additionalProperties": false,
	}
}

func (SleepTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	ms, ok := params["ms"].(float64) // JSON numbers decode as float64
	if !ok {
		return "", fmt.Errorf("ms must be a number")
	}
	d := time.Duration(ms) * time.Millisecond

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return fmt.Sprintf("slept %dms", int64(ms)), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
