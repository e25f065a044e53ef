package api

import "context"

// Handler defines the structural interface for any action the agent can
// execute. Tools (external functionality) and Capabilities (internal,
// introspective functionality) both implement this single interface; the
// two families differ only in which registry holds them.
type Handler interface {
	// Name returns the identifier the handler is registered and resolved
	// under. Must match [A-Za-z0-9_]+.
	Name() string
	// Description returns a one-line human-readable summary used for
	// handler discovery and listings.
	Description() string
	// Execute performs the action with the provided parameter map and
	// returns its result as text. The boundary is string-in/string-out:
	// a handler that fails returns an error, never panics by contract
	// (panics are still contained by the executor).
	Execute(ctx context.Context, params map[string]any) (string, error)
}

// SchemaProvider is an optional extension of Handler. When implemented,
// the executor validates the parameter map against the returned JSON
// Schema document before invoking Execute.
type SchemaProvider interface {
	// ParameterSchema returns a JSON Schema as a Go map, e.g.
	// {"type": "object", "properties": {...}, "required": [...]}.
	ParameterSchema() map[string]any
}

// HandlerInfo is the listing entry for a registered handler.
type HandlerInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry defines the interface for managing and resolving handlers of
// one family. Lookup is exact-match only; there is no fuzzy resolution.
type Registry interface {
	// Register adds a handler under its name. Registering a name that is
	// already present is a configuration error and is rejected.
	Register(h Handler) error
	// Unregister removes a handler by name. Removing an unknown name is
	// a no-op.
	Unregister(name string)
	// Get retrieves a handler by exact name.
	Get(name string) (Handler, bool)
	// List returns all registered handlers in registration order.
	List() []HandlerInfo
}
