// Package capability provides the builtin Capability handlers. Per the
// dispatch model, capabilities are internal, introspective functionality
// as opposed to the external functionality exposed as tools.
package capability

import (
	"context"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"reactor/pkg/api"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Lister is the narrow registry view the catalog needs.
type Lister interface {
	List() []api.HandlerInfo
}

// Catalog exposes handler discovery as a regular capability: invoking
// it returns the registered tools and capabilities as JSON, optionally
// filtered by a query substring matched against names and descriptions.
// Keeping discovery inside the registry machinery keeps the parser down
// to its two directive forms.
type Catalog struct {
	tools        Lister
	capabilities Lister
}

// NewCatalog creates a catalog over the two registries.
func NewCatalog(tools, capabilities Lister) *Catalog {
	return &Catalog{tools: tools, capabilities: capabilities}
}

func (*Catalog) Name() string { return "catalog" }

func (*Catalog) Description() string {
	return "Lists registered tools and capabilities, optionally filtered by query."
}

func (*Catalog) ParameterSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Substring to match against handler names and descriptions",
			},
		},
		"additionalProperties": false,
	}
}

func (c *Catalog) Execute(ctx context.Context, params map[string]any) (string, error) {
	query, _ := params["query"].(string)

	listing := map[string][]api.HandlerInfo{
		"tools":        filter(c.tools.List(), query),
		"capabilities": filter(c.capabilities.List(), query),
	}
	out, err := json.Marshal(listing)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func filter(infos []api.HandlerInfo, query string) []api.HandlerInfo {
	if query == "" {
		return infos
	}
	q := strings.ToLower(query)
	matched := make([]api.HandlerInfo, 0, len(infos))
	for _, info := range infos {
		if strings.Contains(strings.ToLower(info.Name), q) ||
			strings.Contains(strings.ToLower(info.Description), q) {
			matched = append(matched, info)
		}
	}
	return matched
}
