package query

import (
	"encoding/json"

	"go-property-analyzer/internal/model"
)

// ResultSet is an ordered mapping of dataset name to result dataset.
// Entries keep the order of the store they were produced from, and a
// dataset with no matches is present as an empty entry.
type ResultSet struct {
	names []string
	sets  map[string]*model.Dataset
}

func newResultSet() *ResultSet {
	return &ResultSet{sets: make(map[string]*model.Dataset)}
}

func (rs *ResultSet) put(name string, ds *model.Dataset) {
	if _, exists := rs.sets[name]; !exists {
		rs.names = append(rs.names, name)
	}
	rs.sets[name] = ds
}

// Names returns the dataset names in order.
func (rs *ResultSet) Names() []string {
	return append([]string(nil), rs.names...)
}

// Get returns the result for one dataset.
func (rs *ResultSet) Get(name string) (*model.Dataset, bool) {
	ds, ok := rs.sets[name]
	return ds, ok
}

// Len returns the number of datasets in the result.
func (rs *ResultSet) Len() int { return len(rs.names) }

// TotalRecords returns the number of matching records across all datasets.
func (rs *ResultSet) TotalRecords() int {
	total := 0
	for _, n := range rs.names {
		total += rs.sets[n].Len()
	}
	return total
}

// Each calls fn for every entry in order.
func (rs *ResultSet) Each(fn func(name string, ds *model.Dataset)) {
	for _, n := range rs.names {
		fn(n, rs.sets[n])
	}
}

type resultEntry struct {
	Name    string         `json:"name"`
	Dataset *model.Dataset `json:"dataset"`
}

// MarshalJSON encodes the result as an ordered array of entries.
func (rs *ResultSet) MarshalJSON() ([]byte, error) {
	entries := make([]resultEntry, 0, len(rs.names))
	for _, n := range rs.names {
		entries = append(entries, resultEntry{Name: n, Dataset: rs.sets[n]})
	}
	return json.Marshal(entries)
}
