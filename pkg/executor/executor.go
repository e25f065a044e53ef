package executor

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"reactor/pkg/api"
	"reactor/pkg/events"
)

// DefaultBudget is the time budget applied when none is configured.
const DefaultBudget = 10 * time.Second

// timeoutPayload is part of the external contract: the raw failure
// never crosses the boundary, only synthesized messages do.
const timeoutPayload = "The action timed out."

// Executor invokes handlers under a per-call deadline. Each invocation
// owns its own context.WithTimeout handle and releases it on every exit
// path, so concurrent agent instances never share or leak a timer.
type Executor struct {
	sink   events.Sink
	budget atomic.Int64 // nanoseconds; hot-reloadable
}

// New creates an executor with the given time budget. A zero or
// negative budget falls back to DefaultBudget.
func New(budget time.Duration, sink events.Sink) *Executor {
	e := &Executor{sink: sink}
	e.SetBudget(budget)
	return e
}

// SetBudget replaces the time budget for subsequent invocations. It is
// safe to call concurrently with Execute; in-flight invocations keep
// the budget they started with.
func (e *Executor) SetBudget(budget time.Duration) {
	if budget <= 0 {
		budget = DefaultBudget
	}
	e.budget.Store(int64(budget))
}

// Budget returns the current time budget.
func (e *Executor) Budget() time.Duration {
	return time.Duration(e.budget.Load())
}

// Execute runs the handler under the deadline and classifies the result.
//
// Completion within budget yields Success with the handler result as
// payload and an info event carrying the elapsed time. A deadline that
// fires first yields Timeout: waiting is abandoned, but the handler is
// not forcibly interrupted — any work it leaves in flight is an explicit
// documented hazard, not a guarantee this component makes. A handler
// error or panic yields HandlerError with a synthesized message.
// Nothing is retried here.
func (e *Executor) Execute(ctx context.Context, h api.Handler, params map[string]any) Outcome {
	start := time.Now()
	name := h.Name()

	if sp, ok := h.(api.SchemaProvider); ok {
		if err := e.validateParams(name, sp, params); err != nil {
			events.Emit(e.sink, events.LevelError, "executor", "parameter validation failed", map[string]any{
				"action": name,
				"error":  err.Error(),
			})
			return Outcome{
				Status:  HandlerError,
				Payload: fmt.Sprintf("An error occurred: %v", err),
				Elapsed: time.Since(start),
			}
		}
	}

	budget := e.Budget()
	runCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	resultCh := make(chan string, 1)
	errCh := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				errCh <- fmt.Errorf("handler panicked: %v", r)
			}
		}()
		result, err := h.Execute(runCtx, params)
		if err != nil {
			errCh <- err
			return
		}
		resultCh <- result
	}()

	select {
	case result := <-resultCh:
		elapsed := time.Since(start)
		events.Emit(e.sink, events.LevelInfo, "executor", "action executed successfully", map[string]any{
			"action":     name,
			"elapsed_ms": elapsed.Milliseconds(),
		})
		return Outcome{Status: Success, Payload: result, Elapsed: elapsed}

	case err := <-errCh:
		elapsed := time.Since(start)
		events.Emit(e.sink, events.LevelError, "executor", "error executing action", map[string]any{
			"action":     name,
			"error":      err.Error(),
			"elapsed_ms": elapsed.Milliseconds(),
		})
		return Outcome{
			Status:  HandlerError,
			Payload: fmt.Sprintf("An error occurred: %v", err),
			Elapsed: elapsed,
		}

	case <-runCtx.Done():
		elapsed := time.Since(start)
		events.Emit(e.sink, events.LevelError, "executor", "action execution timed out", map[string]any{
			"action":     name,
			"budget_ms":  budget.Milliseconds(),
			"elapsed_ms": elapsed.Milliseconds(),
		})
		return Outcome{Status: Timeout, Payload: timeoutPayload, Elapsed: elapsed}
	}
}

// validateParams checks the parameter map against the handler's declared
// JSON Schema. The schema is compiled per call; handler names can be
// unregistered and reused, so nothing here may be keyed by name.
func (e *Executor) validateParams(name string, sp api.SchemaProvider, params map[string]any) error {
	doc := sp.ParameterSchema()
	if doc == nil {
		return nil
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("invalid parameter schema for %q: %w", name, err)
	}

	if params == nil {
		params = map[string]any{}
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(params))
	if err != nil {
		return fmt.Errorf("parameter validation for %q: %w", name, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("invalid parameters for %q: %s", name, strings.Join(msgs, "; "))
	}
	return nil
}
