package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSynonymsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "synonyms <word>",
		Short: "Print the synonym database lookup for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			thesaurus, err := loadLexicon(cmd.Context(), v)
			if err != nil {
				return err
			}

			synonyms := thesaurus.Lookup(args[0])
			if len(synonyms) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no synonyms for %q\n", args[0])
				return nil
			}
			for _, s := range synonyms {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
