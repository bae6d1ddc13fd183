package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/intrari-furnizori/internal/client"
	"github.com/rezonia/intrari-furnizori/internal/loader"
)

var (
	dryRun bool
)

var submitCmd = &cobra.Command{
	Use:   "submit <file>",
	Short: "Submit one batch file",
	Long: `Load a batch file, check it and POST it once to
http://<host>:<port>/datasnap/rest/TServerMethods/IntrariFurnizori.

Any HTTP response counts as delivered and is reported with its status.
The command fails when the batch is invalid or the request could not be
completed (DNS, connect timeout, TLS, I/O). Nothing is retried.

Examples:
  intrari submit batch.yaml
  intrari submit batch.xlsx --host 10.0.0.5 --port 211 --connect-timeout 3s
  intrari submit batch.yaml --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the request body instead of sending it")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	batch, err := loader.LoadFile(args[0])
	if err != nil {
		return err
	}
	printVerbose("Loaded %s: %d documents\n", args[0], len(batch.Documente))

	if dryRun {
		body, err := client.Encode(batch)
		if err != nil {
			return err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, body, "", "  "); err != nil {
			return err
		}
		out.WriteByte('\n')
		_, err = cmd.OutOrStdout().Write(out.Bytes())
		return err
	}

	cfg, logger, err := loadSettings()
	if err != nil {
		return err
	}

	c := client.New(cfg.Endpoint(),
		client.WithConnectTimeout(cfg.ConnectTimeout),
		client.WithLogger(logger),
	)

	start := time.Now()
	receipt, err := c.Submit(cmd.Context(), batch)
	if err != nil {
		return err
	}
	printVerbose("Submitted in %s\n", elapsed(start))

	if outputFormat == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(SubmitResult{
			File:       args[0],
			Endpoint:   c.Endpoint(),
			StatusCode: receipt.StatusCode,
			RequestID:  receipt.RequestID,
			Documente:  len(batch.Documente),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: delivered to %s (HTTP %d, request %s)\n",
		args[0], c.Endpoint(), receipt.StatusCode, receipt.RequestID)
	return nil
}

// SubmitResult holds the outcome of a submission
type SubmitResult struct {
	File       string `json:"file"`
	Endpoint   string `json:"endpoint"`
	StatusCode int    `json:"status_code"`
	RequestID  string `json:"request_id"`
	Documente  int    `json:"documente"`
}
