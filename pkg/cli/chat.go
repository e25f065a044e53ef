package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"reactor/pkg/api"
	"reactor/pkg/config"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive reason/act loop with the operator as reasoner",
		Long: `Starts a REPL that drives the full chat cycle without any model:
each "you>" line is the query, and every "reasoner>" prompt asks you to
supply the reasoning text a model would have produced. Reply with a
directive such as

    use tool:echo {"msg": "hi"}

to see it parsed, routed, and executed; action results are fed back as
the next reasoner input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := buildAgent()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			// Re-apply the executor budget when system.json changes.
			reloadCh := config.WatchConfig(ctx, flagSystem)
			go func() {
				for range reloadCh {
					fresh := config.LoadSystemConfig(flagSystem)
					a.Executor().SetBudget(fresh.ActionTimeout())
				}
			}()

			out := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())

			fmt.Fprintln(out, "reactor chat — empty line to quit")
			fmt.Fprintln(out, a.Instructions())
			fmt.Fprintln(out)

			a.SetReasoner(promptReasoner(in, out))

			for {
				fmt.Fprint(out, "you> ")
				if !in.Scan() {
					return nil
				}
				query := strings.TrimSpace(in.Text())
				if query == "" {
					return nil
				}

				answer, err := a.Chat(ctx, query)
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				fmt.Fprintf(out, "final> %s\n", answer)
			}
		},
	}
}

// promptReasoner asks the operator to play the model: it shows the
// current input and reads the reasoning text from the terminal.
func promptReasoner(in *bufio.Scanner, out io.Writer) api.Reasoner {
	return api.ReasonerFunc(func(ctx context.Context, input string) (string, error) {
		fmt.Fprintf(out, "input to reasoner: %s\n", input)
		fmt.Fprint(out, "reasoner> ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return in.Text(), nil
	})
}
