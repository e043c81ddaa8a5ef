package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"RuleChatbot/pkg/nlp"

	"github.com/spf13/cobra"
)

func newIntentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intents",
		Short: "List the intent catalog in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tINTENT\tKEYWORDS\tRESPONSE")
			for i, intent := range nlp.DefaultCatalog().Intents() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, intent.Name, strings.Join(intent.Keywords.Sorted(), ","), intent.Response)
			}
			return w.Flush()
		},
	}
}
