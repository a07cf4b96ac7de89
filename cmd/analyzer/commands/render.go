package commands

import (
	"fmt"
	"strconv"

	"go-property-analyzer/internal/logger"
	"go-property-analyzer/internal/model"
	"go-property-analyzer/internal/query"

	"github.com/pterm/pterm"
)

// tableData renders up to limit records of ds as a table with a header
// row. limit <= 0 renders every record.
func tableData(ds *model.Dataset, limit int) pterm.TableData {
	rows := ds.Rows()
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, ds.ColumnNames())
	return append(data, rows...)
}

// histogramBars turns bins into bar chart entries labelled by range.
func histogramBars(h model.Histogram) pterm.Bars {
	bars := make(pterm.Bars, 0, len(h.Bins))
	for _, b := range h.Bins {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%s-%s", formatBound(b.Lower), formatBound(b.Upper)),
			Value: b.Count,
		})
	}
	return bars
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func renderDataset(ds *model.Dataset, limit int) error {
	pterm.DefaultSection.Println(ds.Name)
	if ds.Len() == 0 {
		pterm.Info.Println("No matching records")
		return nil
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData(ds, limit)).Render(); err != nil {
		return err
	}
	if limit > 0 && ds.Len() > limit {
		pterm.Info.Printf("Showing %d of %d records\n", limit, ds.Len())
	}
	return nil
}

func renderResultSet(rs *query.ResultSet, limit int) error {
	var err error
	rs.Each(func(name string, ds *model.Dataset) {
		if err != nil {
			return
		}
		err = renderDataset(ds, limit)
	})
	if err != nil {
		return err
	}
	pterm.Success.Printf("%d matching records across %d datasets\n", rs.TotalRecords(), rs.Len())
	return nil
}

func renderCounts(rs *query.ResultSet) error {
	data := pterm.TableData{{"dataset", "count"}}
	rs.Each(func(name string, ds *model.Dataset) {
		data = append(data, []string{name, strconv.Itoa(ds.Len())})
	})
	data = append(data, []string{"total", strconv.Itoa(rs.TotalRecords())})
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderHistogram(h model.Histogram) error {
	pterm.DefaultSection.Printf("%s: %s distribution\n", h.Dataset, h.Column)
	if len(h.Bins) == 0 {
		pterm.Info.Println("No values to chart")
		return nil
	}
	if err := pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(histogramBars(h)).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("%d values in %d bins\n", h.Total(), len(h.Bins))
	return nil
}

// record logs a finished command in the session history, if enabled.
func record(op, dataset string, params map[string]string, count int, opErr error) {
	if session.history == nil {
		return
	}
	run := model.NewQueryRun(op, dataset, params, count, opErr)
	if _, err := session.history.SaveQuery(run); err != nil {
		logger.Warnw("query not recorded", "operation", op, "error", err)
	}
}
