package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/intrari-furnizori/internal/client"
	"github.com/rezonia/intrari-furnizori/internal/config"
	"github.com/rezonia/intrari-furnizori/internal/server"
)

var (
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
	keepBatches  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local receiver for testing submissions",
	Long: `Start a stand-in for the DataSnap server. It checks every submitted
batch the way the client does and keeps the most recent ones in memory.

Endpoints:
  - POST ` + client.Path + `  - Accept a batch
  - POST /validate  - Check a batch without keeping it
  - GET  /received  - Accepted batches, newest first
  - GET  /health    - Health check

Examples:
  # Start on the default address
  intrari serve

  # Start on another port, then submit to it
  intrari serve --address :9090
  intrari submit batch.yaml --port 9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("address", ":8080", "Listen address (env: INTRARI_SERVE_ADDRESS)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
	serveCmd.Flags().IntVar(&keepBatches, "keep", server.DefaultKeep, "Accepted batches kept in memory")

	bindFlag(config.KeyServeAddress, serveCmd.Flags().Lookup("address"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadSettings()
	if err != nil {
		return err
	}

	srv := server.NewServer(&server.Config{
		Address:      cfg.ServeAddress,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
		Logger:       logger,
		Keep:         keepBatches,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
		logger.Info().Msg("shutting down receiver")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
