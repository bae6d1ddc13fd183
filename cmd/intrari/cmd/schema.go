package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/intrari-furnizori/internal/schema"
)

var schemaMode string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of a batch",
	Long: `Print the JSON Schema derived from the wire labels.

Modes:
  input  batch files: labels optional, numbers allowed for scalar fields
  wire   request body: every label present, strings or null only

Examples:
  intrari schema
  intrari schema --mode wire > intrari.schema.json`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVar(&schemaMode, "mode", "input", "Schema variant (input, wire)")
}

func runSchema(cmd *cobra.Command, args []string) error {
	var mode schema.Mode
	switch schemaMode {
	case "input":
		mode = schema.Input
	case "wire":
		mode = schema.Wire
	default:
		return fmt.Errorf("unknown schema mode %q (accepted: input, wire)", schemaMode)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(schema.Build(mode))
}
