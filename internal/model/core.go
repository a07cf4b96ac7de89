package model

// DatasetSummary describes a registered dataset without its records.
type DatasetSummary struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
	Records int      `json:"records"`
}

// Summarize returns the summary of d.
func Summarize(d *Dataset) DatasetSummary {
	return DatasetSummary{Name: d.Name, Columns: d.Columns, Records: d.Len()}
}

// ClassifyRequest is the body for POST /api/v1/classify
type ClassifyRequest struct {
	Column    string   `json:"column"`
	Keywords  []string `json:"keywords"`  // empty uses the configured group
	CountOnly bool     `json:"countOnly"` // return per-dataset counts only
}

// ExportRequest is the body for POST /api/v1/exports
type ExportRequest struct {
	Dataset string `json:"dataset"`
	Format  string `json:"format"` // csv, json
}

// LoadResponse lists the datasets registered by a load.
type LoadResponse struct {
	Loaded []string `json:"loaded"`
}

// CountResponse maps dataset name to matching record count, in store order.
type CountResponse struct {
	Counts []DatasetCount `json:"counts"`
	Total  int            `json:"total"`
}

// DatasetCount is one entry of a CountResponse.
type DatasetCount struct {
	Dataset string `json:"dataset"`
	Count   int    `json:"count"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string   `json:"error"`
	Hints []string `json:"hints,omitempty"`
}
