package api

import "context"

// Reasoner is the external collaborator that produces reasoning text.
// The chat driver feeds action results back through it until a final
// answer emerges. Implementations live outside this module; the core
// never performs model inference itself.
type Reasoner interface {
	Reason(ctx context.Context, input string) (string, error)
}

// ReasonerFunc adapts a plain function to the Reasoner interface.
type ReasonerFunc func(ctx context.Context, input string) (string, error)

// Reason calls the wrapped function.
func (f ReasonerFunc) Reason(ctx context.Context, input string) (string, error) {
	return f(ctx, input)
}
