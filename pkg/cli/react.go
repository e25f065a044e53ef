package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newReactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "react <reasoning text>",
		Short: "Run one reasoning-to-action turn and print status and payload",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := buildAgent()
			if err != nil {
				return err
			}

			status, payload := a.React(cmd.Context(), strings.Join(args, " "))
			fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", status, payload)
			return nil
		},
	}
}
