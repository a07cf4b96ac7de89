package query

import (
	"iter"

	"go-property-analyzer/internal/model"
)

// Source is the read side of a dataset registry. store.Datasets
// satisfies it.
type Source interface {
	All() iter.Seq2[string, *model.Dataset]
}

// Search returns the records of ds where q, case-folded, is a substring
// of the rendering of any field. An empty q matches every record.
func Search(ds *model.Dataset, q string) *model.Dataset {
	f := newFolder()
	needle := []string{f.fold(q)}
	if needle[0] == "" {
		return ds.Filter(func(model.Record) bool { return true })
	}
	return ds.Filter(func(r model.Record) bool {
		for _, v := range r {
			if f.containsAny(v.String(), needle) {
				return true
			}
		}
		return false
	})
}

// SearchAll runs Search over every dataset in src, in registry order.
func SearchAll(src Source, q string) *ResultSet {
	rs := newResultSet()
	for name, ds := range src.All() {
		rs.put(name, Search(ds, q))
	}
	return rs
}
