package commands

import (
	"go-property-analyzer/internal/config"
	"go-property-analyzer/internal/ingest"
	"go-property-analyzer/internal/logger"
	"go-property-analyzer/internal/report"
	"go-property-analyzer/internal/store"

	"github.com/spf13/cobra"
)

// RootCmd is the analyzer command line.
var RootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "Explore property listing datasets",
	Long: `analyzer loads listing, review and calendar datasets (CSV or JSON) and
runs searches, reports, keyword queries and price histograms over them.

Every command loads the files given with --file first. Datasets are named
by their base file name.

Examples:
  analyzer search bondi --file listings.csv --file reviews.csv
  analyzer report --dataset listings.csv --start 2018-12-01 --end 2018-12-31 --category-column suburb --category-value Bondi --file listings.csv
  analyzer classify --count --file reviews.csv
  analyzer histogram --dataset listings.csv --column price --category-column suburb --category-value Bondi --file listings.csv
  analyzer serve --file listings.csv`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { teardown() },
}

var (
	filesFlag  []string
	configFlag string
	limitFlag  int
)

// session is the state shared by one command invocation.
var session struct {
	cfg      *config.Config
	datasets *store.Datasets
	history  *store.History
}

func init() {
	RootCmd.PersistentFlags().StringSliceVarP(&filesFlag, "file", "f", nil, "Dataset file or URL to load (repeatable)")
	RootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to analyzer.yaml or analyzer.toml")
	RootCmd.PersistentFlags().IntVar(&limitFlag, "limit", 20, "Maximum rows shown per dataset (0 shows all)")

	RootCmd.AddCommand(searchCmd)
	RootCmd.AddCommand(reportCmd)
	RootCmd.AddCommand(keywordCmd)
	RootCmd.AddCommand(classifyCmd)
	RootCmd.AddCommand(histogramCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(serveCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Log.JSON); err != nil {
		return err
	}
	session.cfg = cfg
	session.datasets = store.NewDatasets()

	if len(filesFlag) > 0 {
		if _, err := ingest.NewLoader(session.datasets).WithRetry(ingest.PolicyFromConfig(cfg.Ingest)).Load(cmd.Context(), filesFlag...); err != nil {
			return err
		}
	}

	// serve opens its own history
	if cfg.History.Enabled && cmd != serveCmd {
		history, err := store.OpenHistory(cfg.History.Path)
		if err != nil {
			return err
		}
		session.history = history
	}
	return nil
}

func teardown() {
	if session.history != nil {
		if err := session.history.Close(); err != nil {
			logger.Warnw("close history", "error", err)
		}
		session.history = nil
	}
	logger.Cleanup()
}

// reportBuilder returns a Builder recording into the session history, if any.
func reportBuilder() *report.Builder {
	if session.history == nil {
		return report.NewBuilder(session.datasets, nil)
	}
	return report.NewBuilder(session.datasets, session.history)
}
