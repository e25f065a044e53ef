// Package coretools provides the builtin Tool handlers registered by
// default. Each tool declares a JSON Schema for its parameters, which
// the executor validates before invocation.
package coretools

import "reactor/pkg/api"

// All returns one instance of every builtin tool.
func All() []api.Handler {
	return []api.Handler{
		EchoTool{},
		ClockTool{},
		SleepTool{},
		WordStatsTool{},
	}
}
