// Package aggregate computes frequency distributions over dataset columns.
package aggregate

import (
	"math"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/model"
	"go-property-analyzer/internal/query"
)

// DefaultBinCount matches the price-distribution chart of the analyzer.
const DefaultBinCount = 20

// Histogram partitions the non-missing values of numericColumn into
// binCount equal-width bins spanning [min, max].
//
// Every bin is [lower, upper) except the last, which also holds max.
// A column with no values yields zero bins; a column whose values are all
// equal yields one bin holding all of them.
func Histogram(ds *model.Dataset, numericColumn string, binCount int) (model.Histogram, error) {
	if binCount < 1 {
		return model.Histogram{}, apperr.InvalidArgumentf("bin count %d, want >= 1", binCount)
	}
	if _, err := query.RequireNumericColumn(ds, numericColumn); err != nil {
		return model.Histogram{}, err
	}

	idx, _ := ds.ColumnIndex(numericColumn)
	values := make([]float64, 0, ds.Len())
	for _, r := range ds.Records {
		if f, ok := r[idx].Float(); ok {
			values = append(values, f)
		}
	}

	return model.Histogram{
		Dataset: ds.Name,
		Column:  numericColumn,
		Bins:    bin(values, binCount),
	}, nil
}

// HistogramWhere is Histogram over the records whose categoryColumn renders
// as categoryValue. An empty categoryValue uses every record.
func HistogramWhere(ds *model.Dataset, numericColumn string, binCount int, categoryColumn, categoryValue string) (model.Histogram, error) {
	if categoryValue == "" {
		return Histogram(ds, numericColumn, binCount)
	}
	catIdx, ok := ds.ColumnIndex(categoryColumn)
	if !ok {
		return model.Histogram{}, apperr.SchemaMismatchf("dataset %q has no column %q", ds.Name, categoryColumn)
	}
	subset := ds.Filter(func(r model.Record) bool {
		return r[catIdx].String() == categoryValue
	})
	return Histogram(subset, numericColumn, binCount)
}

func bin(values []float64, binCount int) []model.Bin {
	if len(values) == 0 {
		return []model.Bin{}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return []model.Bin{{Lower: lo, Upper: hi, Count: len(values)}}
	}

	n := float64(binCount)
	span := hi - lo
	width := span / n
	// Finite extremes can still overflow hi-lo.
	if math.IsInf(width, 0) {
		width = hi/n - lo/n
	}
	edge := func(i int) float64 {
		if math.IsInf(span, 0) {
			t := float64(i) / n
			return lo*(1-t) + hi*t
		}
		return lo + float64(i)*width
	}

	bins := make([]model.Bin, binCount)
	for i := range bins {
		bins[i].Lower = edge(i)
		bins[i].Upper = edge(i + 1)
	}
	bins[binCount-1].Upper = hi

	for _, v := range values {
		// A NaN position (zero width after underflow) or one past the last
		// bin starts in the last bin.
		i := binCount - 1
		if pos := (v - lo) / width; pos >= 0 && pos < float64(binCount-1) {
			i = int(pos)
		}
		// Rounding in (v-lo)/width can land a value one bin too high or low
		// relative to the published bounds; settle it against them.
		for i > 0 && v < bins[i].Lower {
			i--
		}
		for i < binCount-1 && v >= bins[i].Upper {
			i++
		}
		bins[i].Count++
	}
	return bins
}
