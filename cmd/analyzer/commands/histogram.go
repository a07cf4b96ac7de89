package commands

import (
	"strconv"

	"go-property-analyzer/internal/aggregate"
	"go-property-analyzer/internal/export"
	"go-property-analyzer/internal/model"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	histDatasetFlag        string
	histColumnFlag         string
	histBinsFlag           int
	histCategoryColumnFlag string
	histCategoryValueFlag  string
	histExportFlag         string
)

var histogramCmd = &cobra.Command{
	Use:   "histogram",
	Short: "Chart the distribution of a numeric column",
	Long: `Bin a numeric column into equal-width bins and chart the counts,
optionally restricted to records with one category value.

Examples:
  analyzer histogram --dataset listings.csv --file listings.csv
  analyzer histogram --dataset listings.csv --category-column suburb --category-value Bondi --bins 10 --file listings.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bins := histBinsFlag
		if bins == 0 {
			bins = session.cfg.Histogram.Bins
		}

		ds, err := session.datasets.Get(histDatasetFlag)
		if err != nil {
			return err
		}
		h, err := aggregate.HistogramWhere(ds, histColumnFlag, bins, histCategoryColumnFlag, histCategoryValueFlag)

		params := map[string]string{
			"column":         histColumnFlag,
			"bins":           strconv.Itoa(bins),
			"categoryColumn": histCategoryColumnFlag,
			"categoryValue":  histCategoryValueFlag,
		}
		record(model.OpHistogram, histDatasetFlag, params, h.Total(), err)
		if err != nil {
			return err
		}
		if err := renderHistogram(h); err != nil {
			return err
		}

		if histExportFlag == "" {
			return nil
		}
		result, err := export.NewManager(session.cfg.Export.Dir).ExportHistogram(h, histExportFlag)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Exported %d bins to %s\n", result.RecordCount, result.Path)
		return nil
	},
}

func init() {
	histogramCmd.Flags().StringVar(&histDatasetFlag, "dataset", "", "Dataset name (base file name)")
	histogramCmd.Flags().StringVar(&histColumnFlag, "column", "price", "Numeric column")
	histogramCmd.Flags().IntVar(&histBinsFlag, "bins", 0, "Bin count (defaults to histogram.bins)")
	histogramCmd.Flags().StringVar(&histCategoryColumnFlag, "category-column", "suburb", "Category column")
	histogramCmd.Flags().StringVar(&histCategoryValueFlag, "category-value", "", "Restrict to this category value")
	histogramCmd.Flags().StringVar(&histExportFlag, "export", "", "Also write the bins as csv or json")
	_ = histogramCmd.MarkFlagRequired("dataset")
}
