package query

import "go-property-analyzer/internal/model"

// RetrieveByKeyword keeps the records whose textColumn contains keyword,
// ignoring case. A dataset without textColumn yields an empty dataset.
func RetrieveByKeyword(ds *model.Dataset, textColumn, keyword string) *model.Dataset {
	return matchAny(ds, textColumn, []string{keyword})
}

// RetrieveAll runs RetrieveByKeyword over every dataset in src, in
// registry order. Datasets lacking textColumn appear as empty entries.
func RetrieveAll(src Source, textColumn, keyword string) *ResultSet {
	rs := newResultSet()
	for name, ds := range src.All() {
		rs.put(name, RetrieveByKeyword(ds, textColumn, keyword))
	}
	return rs
}

// matchAny keeps records whose textColumn, case-folded, contains at least
// one of keywords. No keywords, or no such column, matches nothing.
func matchAny(ds *model.Dataset, textColumn string, keywords []string) *model.Dataset {
	idx, ok := ds.ColumnIndex(textColumn)
	if !ok || len(keywords) == 0 {
		return ds.Empty()
	}

	f := newFolder()
	folded := make([]string, len(keywords))
	for i, k := range keywords {
		folded[i] = f.fold(k)
	}

	return ds.Filter(func(r model.Record) bool {
		return f.containsAny(r[idx].String(), folded)
	})
}
