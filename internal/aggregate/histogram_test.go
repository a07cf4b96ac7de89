package aggregate

import (
	"math"
	"testing"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prices(vals ...model.Value) *model.Dataset {
	records := make([]model.Record, len(vals))
	for i, v := range vals {
		suburb := "Bondi"
		if i%2 == 1 {
			suburb = "Manly"
		}
		records[i] = model.Record{model.Text(suburb), v}
	}
	return model.MustDataset("listings", []model.Column{
		{Name: "suburb", Kind: model.KindText},
		{Name: "price", Kind: model.KindNumber},
	}, records)
}

func nums(fs ...float64) []model.Value {
	out := make([]model.Value, len(fs))
	for i, f := range fs {
		out[i] = model.Number(f)
	}
	return out
}

func TestHistogramTwoBins(t *testing.T) {
	h, err := Histogram(prices(nums(100, 150, 200)...), "price", 2)
	require.NoError(t, err)
	assert.Equal(t, []model.Bin{
		{Lower: 100, Upper: 150, Count: 1},
		{Lower: 150, Upper: 200, Count: 2},
	}, h.Bins)
	assert.Equal(t, "listings", h.Dataset)
	assert.Equal(t, "price", h.Column)
}

func TestHistogramDegenerateColumn(t *testing.T) {
	h, err := Histogram(prices(nums(75, 75, 75)...), "price", 5)
	require.NoError(t, err)
	require.Len(t, h.Bins, 1)
	assert.Equal(t, model.Bin{Lower: 75, Upper: 75, Count: 3}, h.Bins[0])
}

func TestHistogramEmptyColumnHasNoBins(t *testing.T) {
	h, err := Histogram(prices(model.Missing(), model.Missing()), "price", 4)
	require.NoError(t, err)
	assert.Empty(t, h.Bins)

	h, err = Histogram(prices(), "price", 4)
	require.NoError(t, err)
	assert.Empty(t, h.Bins)
}

func TestHistogramCoverage(t *testing.T) {
	vals := append(nums(0.1, 0.2, 0.3, 0.7, 1.1, 2.9, 3.3, 9.99, 10, 4.4, 0.3), model.Missing())
	ds := prices(vals...)
	for bins := 1; bins <= 13; bins++ {
		h, err := Histogram(ds, "price", bins)
		require.NoError(t, err)
		assert.Len(t, h.Bins, bins)
		assert.Equal(t, 11, h.Total(), "bins=%d", bins)

		for i, b := range h.Bins {
			assert.LessOrEqual(t, b.Lower, b.Upper)
			if i > 0 {
				assert.Equal(t, h.Bins[i-1].Upper, b.Lower, "bins must be contiguous")
			}
		}
		assert.Equal(t, 0.1, h.Bins[0].Lower)
		assert.Equal(t, 10.0, h.Bins[bins-1].Upper)
	}
}

func TestHistogramMaxLandsInLastBin(t *testing.T) {
	h, err := Histogram(prices(nums(0, 1, 2, 3)...), "price", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2}, counts(h))
}

func TestHistogramIsDeterministic(t *testing.T) {
	ds := prices(nums(5, 1, 9, 3, 3, 7)...)
	first, err := Histogram(ds, "price", 4)
	require.NoError(t, err)
	second, err := Histogram(ds, "price", 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHistogramErrors(t *testing.T) {
	ds := prices(nums(1, 2)...)

	_, err := Histogram(ds, "price", 0)
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = Histogram(ds, "suburb", 3)
	assert.True(t, apperr.IsSchemaMismatch(err))

	_, err = Histogram(ds, "nights", 3)
	assert.True(t, apperr.IsSchemaMismatch(err))
}

func TestHistogramWhere(t *testing.T) {
	ds := prices(nums(100, 400, 200, 500, 300)...)

	h, err := HistogramWhere(ds, "price", 2, "suburb", "Bondi")
	require.NoError(t, err)
	assert.Equal(t, 3, h.Total())
	assert.Equal(t, 100.0, h.Bins[0].Lower)
	assert.Equal(t, 300.0, h.Bins[1].Upper)

	all, err := HistogramWhere(ds, "price", 2, "suburb", "")
	require.NoError(t, err)
	assert.Equal(t, 5, all.Total())

	none, err := HistogramWhere(ds, "price", 2, "suburb", "Coogee")
	require.NoError(t, err)
	assert.Empty(t, none.Bins)

	_, err = HistogramWhere(ds, "price", 2, "neighbourhood", "Bondi")
	assert.True(t, apperr.IsSchemaMismatch(err))
}

func counts(h model.Histogram) []int {
	out := make([]int, len(h.Bins))
	for i, b := range h.Bins {
		out[i] = b.Count
	}
	return out
}

func TestHistogramExtremeRange(t *testing.T) {
	h, err := Histogram(prices(nums(-1e308, 0, 1e308)...), "price", 4)
	require.NoError(t, err)
	require.Len(t, h.Bins, 4)
	assert.Equal(t, 3, h.Total())
	assert.Equal(t, []int{1, 0, 1, 1}, counts(h))
	assert.Equal(t, -1e308, h.Bins[0].Lower)
	assert.Equal(t, 1e308, h.Bins[3].Upper)
	for i, b := range h.Bins {
		assert.False(t, math.IsInf(b.Lower, 0) || math.IsNaN(b.Lower), "bin %d lower", i)
		assert.False(t, math.IsInf(b.Upper, 0) || math.IsNaN(b.Upper), "bin %d upper", i)
		assert.LessOrEqual(t, b.Lower, b.Upper)
	}
}

func TestHistogramDenormalRange(t *testing.T) {
	for bins := 1; bins <= 5; bins++ {
		h, err := Histogram(prices(nums(0, 5e-324, 0)...), "price", bins)
		require.NoError(t, err)
		assert.Len(t, h.Bins, bins)
		assert.Equal(t, 3, h.Total(), "bins=%d", bins)
		assert.Equal(t, 5e-324, h.Bins[bins-1].Upper)
	}
}
