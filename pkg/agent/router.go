package agent

import (
	"context"
	"fmt"

	"reactor/pkg/api"
	"reactor/pkg/directive"
	"reactor/pkg/events"
	"reactor/pkg/registry"
)

// registryFor selects the registry matching the directive's handler
// family. Both families expose the same Handler interface, so routing
// needs no family-specific branching beyond this selection.
func (a *Agent) registryFor(t directive.Type) *registry.Registry {
	if t == directive.TypeCapability {
		return a.capabilities
	}
	return a.tools
}

// route resolves a directive against the matching registry and runs the
// handler under the bounded executor. Action names come from an
// explicit instruction format, so a miss signals a malformed directive
// or a missing registration; both fail loudly with 404 instead of any
// fuzzy matching.
func (a *Agent) route(ctx context.Context, turnID string, d *directive.Directive) (int, string) {
	h, ok := a.registryFor(d.Type).Get(d.Name)
	if !ok {
		events.Emit(a.sink, events.LevelError, "agent", "ActionNotFound", map[string]any{
			"turn_id": turnID,
			"type":    string(d.Type),
			"action":  d.Name,
		})
		return api.StatusNotFound, fmt.Sprintf("%s '%s' not found.", d.Type.Title(), d.Name)
	}

	out := a.exec.Execute(ctx, h, d.Params)
	events.Emit(a.sink, events.LevelInfo, "agent", "ActionExecuted", map[string]any{
		"turn_id":    turnID,
		"type":       string(d.Type),
		"action":     d.Name,
		"outcome":    out.Status.String(),
		"elapsed_ms": out.Elapsed.Milliseconds(),
	})
	return api.StatusActionExecuted, out.Payload
}
