package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"reactor/pkg/api"
)

func newHandlersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handlers",
		Short: "List registered tools and capabilities in registration order",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := buildAgent()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printInfos := func(family string, infos []api.HandlerInfo) {
				fmt.Fprintf(out, "%s (%d):\n", family, len(infos))
				for _, info := range infos {
					fmt.Fprintf(out, "  %-12s %s\n", info.Name, info.Description)
				}
			}
			printInfos("Tools", a.Tools().List())
			fmt.Fprintln(out)
			printInfos("Capabilities", a.Capabilities().List())
			return nil
		},
	}
}
