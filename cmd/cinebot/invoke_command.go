package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinebot/internal/agent"
)

func newInvokeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke <operation> [key=value ...]",
		Short: "Run a single operation",
		Long: `Run one named operation with key=value arguments and print the result.

Examples:
  cinebot invoke search_movie query="batman 1989"
  cinebot invoke get_movie_details position=2
  cinebot invoke get_cast_crew title="pretty woman"
  cinebot invoke get_trending`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, state, err := ctx.ensureAgent()
			if err != nil {
				return err
			}

			opArgs, err := parseArgs(args[1:])
			if err != nil {
				return err
			}

			result, err := a.Dispatch(cmd.Context(), state, args[0], opArgs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Message)
			if result.Event != nil {
				if rendered := renderEvent(result.Event); rendered != "" {
					fmt.Fprintln(out, rendered)
				}
			}
			return nil
		},
	}
	return cmd
}

func newOperationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "operations",
		Short:       "List available operations",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(agent.Operations, "\n"))
			return nil
		},
	}
}

func parseArgs(pairs []string) (map[string]string, error) {
	args := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("argument %q is not key=value", pair)
		}
		args[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return args, nil
}
