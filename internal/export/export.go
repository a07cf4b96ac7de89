// Package export writes result datasets and histograms to CSV or JSON
// files under a per-run output directory.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/logger"
	"go-property-analyzer/internal/model"
	"go-property-analyzer/pkg/utils"

	"github.com/google/uuid"
)

// Supported formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Manager writes export files through an OutputManager.
type Manager struct {
	output *utils.OutputManager
}

// NewManager returns a Manager writing below baseDir.
func NewManager(baseDir string) *Manager {
	return &Manager{output: utils.NewOutputManager(baseDir)}
}

// Output exposes the underlying layout, used to serve downloads.
func (m *Manager) Output() *utils.OutputManager {
	return m.output
}

// ExportDataset writes ds in format ("csv" or "json") to a fresh run
// directory.
func (m *Manager) ExportDataset(ds *model.Dataset, format string) (model.ExportResult, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return model.ExportResult{}, err
	}
	return m.write(ds.Name, format, func(w io.Writer) (int, error) {
		if format == FormatJSON {
			return WriteDatasetJSON(w, ds)
		}
		return WriteDatasetCSV(w, ds)
	})
}

// ExportHistogram writes h in format to a fresh run directory.
func (m *Manager) ExportHistogram(h model.Histogram, format string) (model.ExportResult, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return model.ExportResult{}, err
	}
	return m.write(h.Dataset+" "+h.Column+" histogram", format, func(w io.Writer) (int, error) {
		if format == FormatJSON {
			return len(h.Bins), encodeJSON(w, h)
		}
		return WriteHistogramCSV(w, h)
	})
}

func (m *Manager) write(baseName, format string, body func(io.Writer) (int, error)) (model.ExportResult, error) {
	runID := uuid.New().String()
	fileName := utils.SafeFileName(strings.TrimSuffix(baseName, "."+format) + "." + format)

	result := model.ExportResult{
		ID:        runID,
		Format:    format,
		Timestamp: time.Now().UTC(),
	}

	path, err := m.output.OutputFilePath(runID, fileName)
	if err != nil {
		return m.fail(result, err)
	}
	result.Path = path
	result.DownloadURL = m.output.DownloadURL(runID, fileName)

	file, err := os.Create(path)
	if err != nil {
		return m.fail(result, apperr.Wrapf(err, "create %s", path))
	}
	count, err := body(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	result.RecordCount = count
	if err != nil {
		return m.fail(result, err)
	}

	result.Success = true
	logger.Infow("export written", "id", runID, "path", path, "records", count)
	return result, nil
}

func (m *Manager) fail(result model.ExportResult, err error) (model.ExportResult, error) {
	result.Error = err.Error()
	logger.Errorw("export failed", "id", result.ID, "error", err)
	return result, err
}

func normalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", apperr.InvalidArgumentf("unknown export format %q", format)
	}
}

// WriteDatasetCSV writes a header row and one row per record. It returns
// the number of records written.
func WriteDatasetCSV(w io.Writer, ds *model.Dataset) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write(ds.ColumnNames()); err != nil {
		return 0, apperr.Wrap(err, "write header")
	}
	count := 0
	for _, row := range ds.Rows() {
		if err := writer.Write(row); err != nil {
			return count, apperr.Wrap(err, "write row")
		}
		count++
	}
	writer.Flush()
	return count, writer.Error()
}

// WriteDatasetJSON writes ds with export metadata.
func WriteDatasetJSON(w io.Writer, ds *model.Dataset) (int, error) {
	payload := map[string]interface{}{
		"export_info": map[string]interface{}{
			"dataset":      ds.Name,
			"exported_at":  time.Now().UTC(),
			"record_count": ds.Len(),
		},
		"columns": ds.Columns,
		"records": ds.Records,
	}
	if err := encodeJSON(w, payload); err != nil {
		return 0, err
	}
	return ds.Len(), nil
}

// WriteHistogramCSV writes one lower,upper,count row per bin.
func WriteHistogramCSV(w io.Writer, h model.Histogram) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"lower", "upper", "count"}); err != nil {
		return 0, apperr.Wrap(err, "write header")
	}
	for i, b := range h.Bins {
		row := []string{
			strconv.FormatFloat(b.Lower, 'f', -1, 64),
			strconv.FormatFloat(b.Upper, 'f', -1, 64),
			strconv.Itoa(b.Count),
		}
		if err := writer.Write(row); err != nil {
			return i, apperr.Wrap(err, "write bin")
		}
	}
	writer.Flush()
	return len(h.Bins), writer.Error()
}

func encodeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return apperr.Wrap(err, "encode JSON")
	}
	return nil
}
