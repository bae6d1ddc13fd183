package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/intrari-furnizori/internal/loader"
	"github.com/rezonia/intrari-furnizori/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate batch files",
	Long: `Load and build one or more batch files without sending them.

Checks performed:
  - Only known wire labels, with string, number or null values
  - Yes/no flags (Operat, Autofacturare) are Da or Nu
  - Every document has line items and an accepted currency (RON, USD, EUR)
  - The batch has documents and an accepted document type

Examples:
  intrari validate batch.yaml
  intrari validate batches/ --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no files found to validate")
	}

	results := make([]*ValidationResult, 0, len(files))
	allValid := true

	for _, file := range files {
		result := validateFile(file)
		results = append(results, result)

		if !result.Valid {
			allValid = false
		}
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if !r.Valid {
				fmt.Fprintf(out, "✗ %s: INVALID\n", r.File)
				for _, e := range r.Errors {
					fmt.Fprintf(out, "  - %s\n", e)
				}
				continue
			}
			fmt.Fprintf(out, "✓ %s: VALID (%d documents, %d lines)\n", r.File, r.Summary.Documents, r.Summary.Lines)
			printSummary(cmd, r.Summary)
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}

	return nil
}

func validateFile(filePath string) *ValidationResult {
	result := &ValidationResult{
		File:  filePath,
		Valid: true,
	}

	batch, err := loader.LoadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	sum := report.Summarize(batch)
	result.Summary = &sum
	if sum.Unpriced > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d lines without a numeric Cant and Pret", sum.Unpriced))
	}
	return result
}

func printSummary(cmd *cobra.Command, sum *report.Summary) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  SERIE\tNR\tMONEDA\tLINII\tVALOARE")
	for _, d := range sum.Documente {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%s\n", dash(d.SerieDoc), dash(d.NrDoc), dash(d.Moneda), d.Lines, d.Value.StringFixed(2))
	}
	w.Flush()
	for _, t := range sum.Totals {
		fmt.Fprintf(cmd.OutOrStdout(), "  Total %s: %s\n", dash(t.Moneda), t.Value.StringFixed(2))
	}
	if sum.Unpriced > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  ⚠ %d lines without a numeric Cant and Pret\n", sum.Unpriced)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ValidationResult holds the result of validating a single file
type ValidationResult struct {
	File     string          `json:"file"`
	Valid    bool            `json:"valid"`
	Errors   []string        `json:"errors,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
	Summary  *report.Summary `json:"summary,omitempty"`
}
