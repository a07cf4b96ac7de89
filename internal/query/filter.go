package query

import (
	"go-property-analyzer/internal/model"
)

// FilterByDateAndCategory keeps the records of ds whose date lies in
// [start, end] and whose categoryColumn renders exactly as categoryValue.
//
// Dates compare as strings, which is chronological only for zero-padded
// ISO-8601 input. An empty start or end leaves that side of the range
// open; an empty categoryValue disables the category condition. ds must
// carry a date column and categoryColumn, else ErrSchemaMismatch.
func FilterByDateAndCategory(ds *model.Dataset, start, end, categoryColumn, categoryValue string) (*model.Dataset, error) {
	dateCol, err := requireDateColumn(ds)
	if err != nil {
		return nil, err
	}
	if _, err := requireColumn(ds, categoryColumn); err != nil {
		return nil, err
	}

	dateIdx, _ := ds.ColumnIndex(dateCol.Name)
	catIdx, _ := ds.ColumnIndex(categoryColumn)

	return ds.Filter(func(r model.Record) bool {
		if !inDateRange(r[dateIdx], start, end) {
			return false
		}
		return categoryValue == "" || r[catIdx].String() == categoryValue
	}), nil
}

// FilterByDateRange keeps the records of ds whose date lies in [start, end].
func FilterByDateRange(ds *model.Dataset, start, end string) (*model.Dataset, error) {
	dateCol, err := requireDateColumn(ds)
	if err != nil {
		return nil, err
	}
	dateIdx, _ := ds.ColumnIndex(dateCol.Name)

	return ds.Filter(func(r model.Record) bool {
		return inDateRange(r[dateIdx], start, end)
	}), nil
}

// inDateRange applies the inclusive bounds that are set. A missing date
// fails any enforced bound.
func inDateRange(v model.Value, start, end string) bool {
	if start == "" && end == "" {
		return true
	}
	if v.IsMissing() {
		return false
	}
	d := v.String()
	if start != "" && d < start {
		return false
	}
	if end != "" && d > end {
		return false
	}
	return true
}
