package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinebot/internal/agent"
)

func newChatCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive operation loop",
		Long: `Read operations from stdin, one per line, and print each result.
Lines have the same shape as invoke arguments:

  search_movie query="pretty woman"
  get_movie_details position=1
  add_to_watchlist

Type "help" for the operation list, "quit" to exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, state, err := ctx.ensureAgent()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "cinebot ready. Type an operation, \"help\", or \"quit\".")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "quit", "exit":
					return nil
				case "help":
					fmt.Fprintln(out, strings.Join(agent.Operations, "\n"))
					continue
				}

				fields, err := splitChatLine(line)
				if err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				opArgs, err := parseArgs(fields[1:])
				if err != nil {
					fmt.Fprintln(out, err)
					continue
				}

				result, err := a.Dispatch(cmd.Context(), state, fields[0], opArgs)
				if err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				fmt.Fprintln(out, result.Message)
				if result.Event != nil {
					if rendered := renderEvent(result.Event); rendered != "" {
						fmt.Fprintln(out, rendered)
					}
				}
			}
			return scanner.Err()
		},
	}
}

// splitChatLine tokenizes an input line, honoring double quotes so titles
// with spaces survive: search_movie query="pretty woman".
func splitChatLine(line string) ([]string, error) {
	var fields []string
	var current strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				fields = append(fields, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if current.Len() > 0 {
		fields = append(fields, current.String())
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	return fields, nil
}
