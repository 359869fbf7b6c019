package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ecrc42/internal/evaluator"
)

func newEvaluateCmd() *cobra.Command {
	var (
		file   string
		output string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate an answer file",
		Long:  "Applies the rule table to the answers in a YAML file and prints the outcome.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAnswers(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if strict {
				if err := evaluator.ValidateComplete(a); err != nil {
					return err
				}
			}
			return printOutcome(cmd.OutOrStdout(), evaluator.Evaluate(a), output)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Answer file, - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject answer sets the wizard would not accept as finished")
	return cmd
}

func printOutcome(w io.Writer, o evaluator.Outcome, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	case "text", "":
		writeOutcomeText(w, o)
		return nil
	default:
		return fmt.Errorf("unknown output format %q, use text or json", format)
	}
}

func writeOutcomeText(w io.Writer, o evaluator.Outcome) {
	fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(o.Category.Label()), o.Title)
	fmt.Fprintf(w, "%s\n", o.Message)
	sections := []struct {
		title string
		items []string
	}{
		{"Erlaubt", o.AllowedUses},
		{"Eingeschränkt", o.RestrictedUses},
		{"Verboten", o.ForbiddenUses},
		{"Empfehlungen", o.Recommendations},
	}
	for _, sec := range sections {
		if len(sec.items) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", sec.title)
		for _, item := range sec.items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}
	fmt.Fprintf(w, "\nRegel: %s\n", o.Rule)
	if o.NeedsReview {
		fmt.Fprintln(w, "Hinweis: Einige Antworten waren offen, bitte mit einer Lehrperson prüfen.")
	}
}
