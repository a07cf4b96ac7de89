package query

import (
	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/model"
)

// requireColumn checks that ds has the named column, and when kinds is
// non-empty, that the column has one of them.
func requireColumn(ds *model.Dataset, name string, kinds ...model.Kind) (model.Column, error) {
	col, ok := ds.Column(name)
	if !ok {
		return model.Column{}, apperr.SchemaMismatchf("dataset %q has no column %q", ds.Name, name)
	}
	if len(kinds) == 0 {
		return col, nil
	}
	for _, k := range kinds {
		if col.Kind == k {
			return col, nil
		}
	}
	return model.Column{}, apperr.SchemaMismatchf("dataset %q column %q is %s, want %s", ds.Name, name, col.Kind, kinds[0])
}

// requireDateColumn checks that ds carries a Date-kind column.
func requireDateColumn(ds *model.Dataset) (model.Column, error) {
	col, ok := ds.DateColumn()
	if !ok {
		return model.Column{}, apperr.SchemaMismatchf("dataset %q has no date column", ds.Name)
	}
	return col, nil
}

// RequireNumericColumn is exported for the aggregator, which shares the
// same schema rules.
func RequireNumericColumn(ds *model.Dataset, name string) (model.Column, error) {
	return requireColumn(ds, name, model.KindNumber)
}
