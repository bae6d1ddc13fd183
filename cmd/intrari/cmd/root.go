package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rezonia/intrari-furnizori/internal/client"
	"github.com/rezonia/intrari-furnizori/internal/config"
	"github.com/rezonia/intrari-furnizori/internal/logging"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	configFile   string

	v = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "intrari",
	Short: "Build and submit supplier intake batches",
	Long: `Intrari builds supplier intake batches (intrari de la furnizori) and
submits them to the IntrariFurnizori method of a DataSnap accounting server.

Batches are read from YAML, JSON or XLSX files using the wire labels and are
checked before anything is sent.

Settings come from flags, INTRARI_* environment variables or an env file:
  INTRARI_HOST, INTRARI_PORT, INTRARI_CONNECT_TIMEOUT, INTRARI_LOG_LEVEL,
  INTRARI_SERVE_ADDRESS

Examples:
  # Check a batch file
  intrari validate batch.yaml

  # Show the request body without sending it
  intrari submit batch.xlsx --dry-run

  # Send a batch
  intrari submit batch.yaml --host erp.local --port 211

  # Run a local receiver to test against
  intrari serve`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. An interrupt cancels the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.StringVarP(&outputFormat, "format", "f", "table", "Output format (table, json)")
	flags.StringVar(&configFile, "config", "", "Env file of KEY=value settings (HOST or INTRARI_HOST)")
	flags.String("host", "localhost", "Receiving server host (env: INTRARI_HOST)")
	flags.Int("port", 8080, "Receiving server port (env: INTRARI_PORT)")
	flags.Duration("connect-timeout", client.DefaultConnectTimeout, "Connection establishment timeout (env: INTRARI_CONNECT_TIMEOUT)")
	flags.String("log-level", "info", "Log level: trace, debug, info, warn, error (env: INTRARI_LOG_LEVEL)")

	bindFlag(config.KeyHost, flags.Lookup("host"))
	bindFlag(config.KeyPort, flags.Lookup("port"))
	bindFlag(config.KeyConnectTimeout, flags.Lookup("connect-timeout"))
	bindFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("env")
	}
}

// loadSettings resolves the configuration and the logger for a command.
func loadSettings() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	level := cfg.LogLevel
	if verbose && level != "trace" {
		level = "debug"
	}
	logger, err := logging.NewConsole(level, os.Stderr)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger, nil
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func elapsed(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
