package commands

import (
	"go-property-analyzer/internal/export"
	"go-property-analyzer/internal/model"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	exportDatasetFlag string
	exportFormatFlag  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a loaded dataset to a CSV or JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := session.datasets.Get(exportDatasetFlag)
		if err != nil {
			return err
		}
		result, err := export.NewManager(session.cfg.Export.Dir).ExportDataset(ds, exportFormatFlag)
		record(model.OpExport, exportDatasetFlag, map[string]string{"format": exportFormatFlag, "path": result.Path}, result.RecordCount, err)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Exported %d records to %s\n", result.RecordCount, result.Path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDatasetFlag, "dataset", "", "Dataset name (base file name)")
	exportCmd.Flags().StringVar(&exportFormatFlag, "format", export.FormatCSV, "csv or json")
	_ = exportCmd.MarkFlagRequired("dataset")
}
