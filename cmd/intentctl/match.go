package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"RuleChatbot/pkg/nlp"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMatchCmd(v *viper.Viper) *cobra.Command {
	var (
		verbose bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "match <text...>",
		Short: "Print the chatbot response for an utterance",
		Example: `  intentctl match "I lost my card"
  intentctl match --verbose good morning`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			thesaurus, err := loadLexicon(cmd.Context(), v)
			if err != nil {
				return err
			}

			responder, err := nlp.NewResponder(nlp.DefaultCatalog(), thesaurus)
			if err != nil {
				return err
			}

			result := responder.Classify(strings.Join(args, " "))
			out := cmd.OutOrStdout()

			switch {
			case asJSON:
				data, err := jsoniter.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			case verbose:
				printResult(cmd, result)
			default:
				fmt.Fprintln(out, result.Response)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show tokens, expansion and per-intent scores")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")

	return cmd
}

func printResult(cmd *cobra.Command, result *nlp.Result) {
	out := cmd.OutOrStdout()

	intent := result.Intent
	if !result.Matched {
		intent = "(fallback)"
	}

	fmt.Fprintf(out, "Tokens:   %s\n", strings.Join(result.Tokens, " "))
	fmt.Fprintf(out, "Expanded: %s\n", strings.Join(result.ExpandedTokens, " "))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTENT\tSCORE")
	for _, s := range result.Scores {
		fmt.Fprintf(w, "%s\t%d\n", s.Intent, s.Score)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Intent:   %s (score %d, %s)\n", intent, result.Score, result.ProcessingTime)
	fmt.Fprintf(out, "Response: %s\n", result.Response)
}
