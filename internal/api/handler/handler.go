package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/config"
	"go-property-analyzer/internal/export"
	"go-property-analyzer/internal/ingest"
	"go-property-analyzer/internal/logger"
	"go-property-analyzer/internal/model"
	"go-property-analyzer/internal/report"
	"go-property-analyzer/internal/store"
)

// QueryLog is the query history used by the handlers. store.History
// satisfies it.
type QueryLog interface {
	SaveQuery(run model.QueryRun) (model.QueryRun, error)
	ListQueries(limit int) ([]model.QueryRun, error)
	GetQuery(id string) (model.QueryRun, error)
}

// Handler serves the analyzer API over one dataset registry.
type Handler struct {
	datasets *store.Datasets
	loader   *ingest.Loader
	reports  *report.Builder
	exports  *export.Manager
	history  QueryLog
	cfg      config.Config
}

// New wires a Handler. history may be nil, in which case nothing is
// recorded and the query endpoints answer 404.
func New(cfg config.Config, datasets *store.Datasets, history QueryLog) *Handler {
	var recorder report.Recorder
	if history != nil {
		recorder = history
	}
	return &Handler{
		datasets: datasets,
		loader:   ingest.NewLoader(datasets).WithRetry(ingest.PolicyFromConfig(cfg.Ingest)),
		reports:  report.NewBuilder(datasets, recorder),
		exports:  export.NewManager(cfg.Export.Dir),
		history:  history,
		cfg:      cfg,
	}
}

// queryResponse wraps the result of a recorded query.
type queryResponse struct {
	QueryID string      `json:"queryId,omitempty"`
	Total   int         `json:"total"`
	Results interface{} `json:"results"`
}

// record logs a finished operation and returns its query ID, empty when
// history is disabled or the write failed.
func (h *Handler) record(op, dataset string, params map[string]string, count int, opErr error) string {
	if h.history == nil {
		return ""
	}
	run := model.NewQueryRun(op, dataset, params, count, opErr)
	saved, err := h.history.SaveQuery(run)
	if err != nil {
		logger.Warnw("query not recorded", "operation", op, "error", err)
		return ""
	}
	return saved.ID
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorw("encode response", "error", err)
	}
}

// statusFor maps error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case apperr.IsNotFound(err):
		return http.StatusNotFound
	case apperr.IsSchemaMismatch(err), apperr.IsInvalidArgument(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Errorw("request failed", "error", err)
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Hints: apperr.GetAllHints(err)})
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.InvalidArgumentf("invalid JSON payload: %v", err)
	}
	return nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.InvalidArgumentf("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}
