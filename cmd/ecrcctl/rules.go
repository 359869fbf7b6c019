package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ecrc42/internal/evaluator"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the evaluation rules in priority order",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tRULE\tGROUP\tDESCRIPTION")
			for i, r := range evaluator.Rules() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, r.Name, r.Group, r.Description)
			}
			return tw.Flush()
		},
	}
}
