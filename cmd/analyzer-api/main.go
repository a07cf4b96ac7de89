package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-property-analyzer/internal/api"
	"go-property-analyzer/internal/config"
	"go-property-analyzer/internal/ingest"
	"go-property-analyzer/internal/logger"
	"go-property-analyzer/internal/store"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "analyzer-api [dataset files...]",
	Short: "Serve the property analyzer HTTP API",
	Long: `Serve the property analyzer HTTP API.

Dataset files (CSV or JSON, local paths or http(s) URLs) given as
arguments are loaded before the server starts; more can be posted to
/api/v1/datasets at runtime.

Examples:
  analyzer-api listings.csv reviews.csv calendar.csv
  ANALYZER_SERVER_ADDR=:9090 analyzer-api`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args)
	},
}

// @title Property Analyzer API
// @version 1.0
// @description Search, filter, classify and chart property listing datasets.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to analyzer.yaml or analyzer.toml")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, files []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Log.JSON); err != nil {
		return err
	}
	defer logger.Cleanup()

	datasets := store.NewDatasets()
	if len(files) > 0 {
		if _, err := ingest.NewLoader(datasets).WithRetry(ingest.PolicyFromConfig(cfg.Ingest)).Load(ctx, files...); err != nil {
			return err
		}
	}

	return api.Serve(ctx, *cfg, datasets)
}
