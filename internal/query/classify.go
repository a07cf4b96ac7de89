package query

import (
	"go-property-analyzer/internal/model"
)

// KeywordGroup is a set of keywords matched with OR semantics.
type KeywordGroup []string

// DefaultCleanlinessGroup classifies review comments that talk about
// cleanliness.
var DefaultCleanlinessGroup = KeywordGroup{"clean", "tidy", "hygiene", "neat"}

// ClassifyByKeywordGroup keeps the records whose textColumn contains any
// keyword of group, ignoring case.
func ClassifyByKeywordGroup(ds *model.Dataset, textColumn string, group KeywordGroup) *model.Dataset {
	return matchAny(ds, textColumn, group)
}

// CountByKeywordGroup returns how many records ClassifyByKeywordGroup keeps.
func CountByKeywordGroup(ds *model.Dataset, textColumn string, group KeywordGroup) int {
	return ClassifyByKeywordGroup(ds, textColumn, group).Len()
}

// ClassifyAll classifies every dataset in src, in registry order.
func ClassifyAll(src Source, textColumn string, group KeywordGroup) *ResultSet {
	rs := newResultSet()
	for name, ds := range src.All() {
		rs.put(name, ClassifyByKeywordGroup(ds, textColumn, group))
	}
	return rs
}

// CountAll returns the number of matching records across every dataset in src.
func CountAll(src Source, textColumn string, group KeywordGroup) int {
	return ClassifyAll(src, textColumn, group).TotalRecords()
}
