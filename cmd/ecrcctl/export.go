package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ecrc42/internal/evaluator"
	"ecrc42/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		file     string
		format   string
		out      string
		lernname string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a check report for an answer file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			a, err := loadAnswers(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			now := time.Now()
			reportID := "vorschau"
			if file != "-" {
				reportID = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			}
			rendered, err := export.NewRenderer().CheckReport(export.CheckReport{
				ID:        reportID,
				Lernname:  lernname,
				Status:    "preview",
				CreatedAt: now,
				Answers:   a,
				Outcome:   evaluator.Evaluate(a),
			}, f)
			if err != nil {
				return fmt.Errorf("rendering report: %w", err)
			}

			if out == "" {
				out = rendered.Name
			}
			if err := os.WriteFile(out, rendered.Body, 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(rendered.Body))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Answer file, - for stdin")
	cmd.Flags().StringVar(&format, "format", "pdf", "Report format: pdf or html")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path, defaults to the report file name")
	cmd.Flags().StringVarP(&lernname, "name", "n", "", "Lernname printed on the report")
	return cmd
}
