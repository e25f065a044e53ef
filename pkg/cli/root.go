// Package cli wires the dispatch core into a command-line surface:
// a one-shot react command, an interactive chat REPL where the operator
// plays the reasoner, and handler listings.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reactor/pkg/agent"
	"reactor/pkg/capability"
	"reactor/pkg/config"
	"reactor/pkg/coretools"
	"reactor/pkg/events"
)

var (
	flagConfig   string
	flagSystem   string
	flagLogLevel string
)

// NewRootCmd builds the reactor command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reactor",
		Short:         "Reasoning-to-action dispatch loop",
		Long:          "reactor parses action directives out of reasoning text, routes them to registered tool and capability handlers, and executes them under a bounded time budget.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "reactor.json", "agent configuration file")
	root.PersistentFlags().StringVar(&flagSystem, "system", "system.json", "system configuration file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "override configured log level")

	root.AddCommand(newReactCmd())
	root.AddCommand(newChatCmd())
	root.AddCommand(newHandlersCmd())
	return root
}

// Execute runs the CLI and reports any error on stderr.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// buildAgent loads configuration and assembles a fully registered agent
// plus its system config and event sink.
func buildAgent() (*agent.Agent, *config.SystemConfig, error) {
	cfg, sysCfg, err := config.Load(flagConfig, flagSystem)
	if err != nil {
		return nil, nil, err
	}

	level := sysCfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	sink := events.NewConsoleSink(os.Stderr, level)

	a := agent.New(cfg, sysCfg, sink)

	if cfg.EnableCoreTools {
		if err := a.RegisterTool(coretools.All()...); err != nil {
			return nil, nil, err
		}
	}
	if cfg.EnableCatalog {
		if err := a.RegisterCapability(capability.NewCatalog(a.Tools(), a.Capabilities())); err != nil {
			return nil, nil, err
		}
	}
	return a, sysCfg, nil
}
