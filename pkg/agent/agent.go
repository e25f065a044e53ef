package agent

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"reactor/pkg/api"
	"reactor/pkg/config"
	"reactor/pkg/directive"
	"reactor/pkg/events"
	"reactor/pkg/executor"
	"reactor/pkg/registry"
)

// askToContinuePattern matches the marker a reasoner appends when it
// wants another turn without having executed an action.
var askToContinuePattern = regexp.MustCompile(`(?i)\[CAN I CONTINUE\?\]`)

// Agent composes the action parser, the two handler registries, and the
// bounded executor into the per-turn orchestration loop. Registries are
// populated at construction time and are the only state shared across
// concurrent orchestration calls; one directive is parsed, routed, and
// executed per call, with the executor wait as the only suspension
// point.
type Agent struct {
	parser       *directive.Parser
	tools        *registry.Registry
	capabilities *registry.Registry
	exec         *executor.Executor
	sink         events.Sink
	reasoner     api.Reasoner

	maxIterations int
	instructions  string
}

// New creates an agent from the given configuration. Handlers are added
// afterwards via RegisterTool and RegisterCapability; a reasoner is only
// required for Chat.
func New(cfg *config.Config, sysCfg *config.SystemConfig, sink events.Sink) *Agent {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if sysCfg == nil {
		sysCfg = config.DefaultSystemConfig()
	}

	instructions := cfg.Instructions
	if instructions == "" {
		instructions = DefaultInstructions
	}

	return &Agent{
		parser:        directive.NewParser(sink),
		tools:         registry.New(),
		capabilities:  registry.New(),
		exec:          executor.New(sysCfg.ActionTimeout(), sink),
		sink:          sink,
		maxIterations: sysCfg.MaxIterations,
		instructions:  instructions,
	}
}

// SetReasoner injects the external reasoning collaborator used by Chat.
func (a *Agent) SetReasoner(r api.Reasoner) {
	a.reasoner = r
}

// RegisterTool adds one or more handlers to the tool registry.
func (a *Agent) RegisterTool(handlers ...api.Handler) error {
	for _, h := range handlers {
		if err := a.tools.Register(h); err != nil {
			return fmt.Errorf("register tool: %w", err)
		}
	}
	return nil
}

// RegisterCapability adds one or more handlers to the capability
// registry.
func (a *Agent) RegisterCapability(handlers ...api.Handler) error {
	for _, h := range handlers {
		if err := a.capabilities.Register(h); err != nil {
			return fmt.Errorf("register capability: %w", err)
		}
	}
	return nil
}

// Tools returns the tool registry.
func (a *Agent) Tools() *registry.Registry { return a.tools }

// Capabilities returns the capability registry.
func (a *Agent) Capabilities() *registry.Registry { return a.capabilities }

// Executor returns the bounded executor, exposed so callers can
// re-apply a reloaded time budget.
func (a *Agent) Executor() *executor.Executor { return a.exec }

// Instructions returns the directive-syntax briefing for this agent.
func (a *Agent) Instructions() string { return a.instructions }

// React executes one reasoning-to-action turn and classifies it.
//
// No directive in the text means the turn is terminal: status 200 with
// the reasoning text returned verbatim as the final answer. A resolved
// directive yields status 201 with the execution payload, which the
// caller treats as a new input for further reasoning rather than a
// final answer. An unresolved directive yields status 404 with the
// not-found message and ends the turn. Every transition emits exactly
// one event naming the outcome classification.
func (a *Agent) React(ctx context.Context, reasoning string) (int, string) {
	turnID := uuid.NewString()

	d, ok := a.parser.Parse(reasoning)
	if !ok {
		events.Emit(a.sink, events.LevelInfo, "agent", "NoActionFound", map[string]any{
			"turn_id": turnID,
		})
		return api.StatusNoAction, reasoning
	}

	return a.route(ctx, turnID, d)
}

// Chat drives the full reason/act cycle over the injected reasoner:
// generate reasoning, dispatch it through React, and feed a successful
// action result back as the next input until the reasoner produces a
// plain answer, an action fails to resolve, or the iteration budget is
// exhausted.
func (a *Agent) Chat(ctx context.Context, query string) (string, error) {
	if a.reasoner == nil {
		return "", errors.New("no reasoner configured")
	}

	var reply string
	for i := 0; i < a.maxIterations; i++ {
		var err error
		reply, err = a.reasoner.Reason(ctx, query)
		if err != nil {
			return "", fmt.Errorf("reasoner failed: %w", err)
		}

		status, result := a.React(ctx, reply)

		if status != api.StatusActionExecuted && askToContinuePattern.MatchString(reply) {
			events.Emit(a.sink, events.LevelInfo, "agent", "approved continuation", map[string]any{
				"iteration": i,
			})
			query = ContinuePrompt
			continue
		}

		switch status {
		case api.StatusActionExecuted:
			if result == "" {
				// An empty payload gives the reasoner nothing to work
				// with; stop rather than loop on blank input.
				return reply, nil
			}
			query = result
		case api.StatusNoAction:
			return reply, nil
		default:
			// Not-found ends the turn; the payload is not fed back.
			return reply, nil
		}
	}

	events.Emit(a.sink, events.LevelInfo, "agent", "exhausted max iterations", map[string]any{
		"max_iterations": a.maxIterations,
	})
	return reply, nil
}
