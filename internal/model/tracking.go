package model

import "time"

// Query operations recorded in the history log.
const (
	OpSearch    = "search"
	OpKeyword   = "keyword"
	OpClassify  = "classify"
	OpHistogram = "histogram"
	OpReport    = "report"
	OpExport    = "export"
)

// Query run statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// QueryRun is one executed query as kept in the history log.
type QueryRun struct {
	ID          string            `json:"id"`
	Operation   string            `json:"operation"`
	Dataset     string            `json:"dataset,omitempty"`
	Params      map[string]string `json:"params,omitempty"`
	ResultCount int               `json:"result_count"`
	Status      string            `json:"status"`
	Error       string            `json:"error,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// NewQueryRun describes a finished operation for the history log. A non-nil
// opErr marks the run failed.
func NewQueryRun(op, dataset string, params map[string]string, count int, opErr error) QueryRun {
	run := QueryRun{
		Operation:   op,
		Dataset:     dataset,
		Params:      params,
		ResultCount: count,
		Status:      StatusCompleted,
	}
	if opErr != nil {
		run.Status = StatusFailed
		run.Error = opErr.Error()
	}
	return run
}
