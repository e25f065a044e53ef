package coretools

import (
	"context"
	"fmt"
)

// EchoTool returns its msg parameter unchanged. It is the smallest
// possible tool and doubles as a connectivity check for the dispatch
// loop.
type EchoTool struct{}

func (EchoTool) Name() string        { return "echo" }
func (EchoTool) Description() string { return "Returns the msg parameter unchanged." }

func (EchoTool) ParameterSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"msg": map[string]any{
				"type":        "string",
				"description": "Text to echo back",
			},
		},
		"required":             []string{"msg"},
		"additionalProperties": false,
	}
}

func (EchoTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	msg, ok := params["msg"].(string)
	if !ok {
		return "", fmt.Errorf("msg must be a string")
	}
	return msg, nil
}
