package commands

import (
	"go-property-analyzer/internal/report"

	"github.com/spf13/cobra"
)

var reportReq report.Request

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Filter one dataset by date range and category",
	Long: `Filter one dataset to records whose date lies in [--start, --end] and
whose category column equals the category value. Empty bounds leave that
side of the range open. Without --category-column the report is a plain
date-range filter, as for calendar data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := reportBuilder().Run(reportReq)
		if err != nil {
			return err
		}
		return renderDataset(result.Dataset, limitFlag)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportReq.Dataset, "dataset", "", "Dataset name (base file name)")
	reportCmd.Flags().StringVar(&reportReq.StartDate, "start", "", "Inclusive start date, YYYY-MM-DD")
	reportCmd.Flags().StringVar(&reportReq.EndDate, "end", "", "Inclusive end date, YYYY-MM-DD")
	reportCmd.Flags().StringVar(&reportReq.CategoryColumn, "category-column", "", "Category column, e.g. suburb")
	reportCmd.Flags().StringVar(&reportReq.CategoryValue, "category-value", "", "Category value, e.g. Bondi")
	_ = reportCmd.MarkFlagRequired("dataset")
}
