package coretools

import (
	"context"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WordStatsTool counts words, lines, and characters in a text
// parameter and returns the counts as a JSON object.
type WordStatsTool struct{}

func (WordStatsTool) Name() string        { return "wordstats" }
func (WordStatsTool) Description() string { return "Counts words, lines, and characters in text." }

func (WordStatsTool) ParameterSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "Text to analyze",
			},
		},
		"required":             []string{"text"},
		"additionalProperties": false,
	}
}

func (WordStatsTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	text, ok := params["text"].(string)
	if !ok {
		return "", fmt.Errorf("text must be a string")
	}

	stats := map[string]int{
		"words": len(strings.Fields(text)),
		"lines": len(strings.Split(text, "\n")),
		"chars": len([]rune(text)),
	}
	out, err := json.Marshal(stats)
	if err != nil {
		return "", fmt.Errorf("failed to encode stats: %w", err)
	}
	return string(out), nil
}
