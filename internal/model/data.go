package model

import "time"

// ExportResult describes one written export file.
type ExportResult struct {
	ID          string    `json:"id"`
	Format      string    `json:"format"` // "csv", "json"
	Path        string    `json:"path"`
	DownloadURL string    `json:"download_url"`
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
