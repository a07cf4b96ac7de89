package model

import (
	"encoding/json"

	"go-property-analyzer/internal/apperr"
)

// Column is a name plus the value kind inferred at load time.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Record is one row. Values are positionally aligned with the owning
// Dataset's Columns, so a record always carries exactly the dataset's
// column set in column order.
type Record []Value

// Dataset is a named, schema-bound, ordered sequence of records.
// A Dataset is treated as immutable once registered; operations that
// select records return a new Dataset.
type Dataset struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
	Records []Record `json:"records"`

	index map[string]int
}

// NewDataset validates the schema, record widths and value kinds and
// returns a Dataset. Missing values fit any column.
func NewDataset(name string, columns []Column, records []Record) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c.Name == "" {
			return nil, apperr.SchemaMismatchf("dataset %q: column %d has no name", name, i)
		}
		if _, dup := index[c.Name]; dup {
			return nil, apperr.SchemaMismatchf("dataset %q: duplicate column %q", name, c.Name)
		}
		index[c.Name] = i
	}
	for i, r := range records {
		if len(r) != len(columns) {
			return nil, apperr.SchemaMismatchf("dataset %q: record %d has %d values, want %d", name, i, len(r), len(columns))
		}
		for j, v := range r {
			if !v.IsMissing() && v.Kind != columns[j].Kind {
				return nil, apperr.SchemaMismatchf("dataset %q: record %d column %q holds %s, want %s",
					name, i, columns[j].Name, v.Kind, columns[j].Kind)
			}
		}
	}
	if records == nil {
		records = []Record{}
	}
	return &Dataset{Name: name, Columns: columns, Records: records, index: index}, nil
}

// MustDataset is NewDataset for fixtures; it panics on a schema error.
func MustDataset(name string, columns []Column, records []Record) *Dataset {
	ds, err := NewDataset(name, columns, records)
	if err != nil {
		panic(err)
	}
	return ds
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Records) }

// ColumnIndex returns the position of the named column.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	// Datasets built as literals have no index; scan instead of caching so
	// concurrent readers never write to a shared Dataset.
	if d.index == nil {
		for i, c := range d.Columns {
			if c.Name == name {
				return i, true
			}
		}
		return 0, false
	}
	i, ok := d.index[name]
	return i, ok
}

// Column returns the named column.
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.ColumnIndex(name)
	if !ok {
		return Column{}, false
	}
	return d.Columns[i], true
}

// DateColumn picks the column used for date-range filtering: a Date-kind
// column literally named "date" if present, else the first Date-kind column.
func (d *Dataset) DateColumn() (Column, bool) {
	if c, ok := d.Column("date"); ok && c.Kind == KindDate {
		return c, true
	}
	for _, c := range d.Columns {
		if c.Kind == KindDate {
			return c, true
		}
	}
	return Column{}, false
}

// Field returns the value of the named column in r, Missing if the column
// does not exist.
func (d *Dataset) Field(r Record, name string) Value {
	i, ok := d.ColumnIndex(name)
	if !ok {
		return Missing()
	}
	return r[i]
}

// Filter returns a new Dataset with the same schema holding the records
// for which keep returns true, in their original order.
func (d *Dataset) Filter(keep func(Record) bool) *Dataset {
	out := make([]Record, 0)
	for _, r := range d.Records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Dataset{Name: d.Name, Columns: d.Columns, Records: out, index: d.index}
}

// Empty returns a Dataset with the same schema and no records.
func (d *Dataset) Empty() *Dataset {
	return &Dataset{Name: d.Name, Columns: d.Columns, Records: []Record{}, index: d.index}
}

// Renamed returns a shallow copy of d carrying a different name.
func (d *Dataset) Renamed(name string) *Dataset {
	return &Dataset{Name: name, Columns: d.Columns, Records: d.Records, index: d.index}
}

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Rows renders every record as strings, for tabular display and export.
func (d *Dataset) Rows() [][]string {
	rows := make([][]string, len(d.Records))
	for i, r := range d.Records {
		row := make([]string, len(r))
		for j, v := range r {
			row[j] = v.String()
		}
		rows[i] = row
	}
	return rows
}

// UnmarshalJSON decodes the form produced by encoding a Dataset, restoring
// Date values and validating the schema.
func (d *Dataset) UnmarshalJSON(b []byte) error {
	var wire struct {
		Name    string   `json:"name"`
		Columns []Column `json:"columns"`
		Records []Record `json:"records"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	for _, r := range wire.Records {
		for j := 0; j < len(r) && j < len(wire.Columns); j++ {
			if wire.Columns[j].Kind == KindDate && r[j].Kind == KindText {
				r[j] = Date(r[j].text)
			}
		}
	}
	ds, err := NewDataset(wire.Name, wire.Columns, wire.Records)
	if err != nil {
		return err
	}
	*d = *ds
	return nil
}
