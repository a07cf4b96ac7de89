package handler

import (
	"net/http"
	"strconv"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/report"
	"go-property-analyzer/pkg/router"
)

// CreateReport builds a listings report
// @Summary Build a report
// @Description Filters one dataset by inclusive date range and category value. Empty bounds or category disable that condition.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body report.Request true "Report parameters"
// @Success 200 {object} report.Result
// @Failure 400 {object} model.ErrorResponse "Dataset lacks the date or category column"
// @Failure 404 {object} model.ErrorResponse "Dataset not found"
// @Router /reports [post]
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req report.Request
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Dataset == "" {
		writeError(w, apperr.InvalidArgumentf("dataset is required"))
		return
	}

	result, err := h.reports.Run(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ListQueries lists recorded queries
// @Summary List query history
// @Description Most recent first
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of runs"
// @Success 200 {array} model.QueryRun
// @Failure 404 {object} model.ErrorResponse "History disabled"
// @Router /queries [get]
func (h *Handler) ListQueries(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, apperr.NotFoundf("query history is disabled"))
		return
	}
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	runs, err := h.history.ListQueries(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(len(runs)))
	writeJSON(w, http.StatusOK, runs)
}

// GetQuery returns one recorded query
// @Summary Get a recorded query
// @Tags history
// @Produce json
// @Param id path string true "Query ID"
// @Success 200 {object} model.QueryRun
// @Failure 404 {object} model.ErrorResponse "Query not found"
// @Router /queries/{id} [get]
func (h *Handler) GetQuery(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, apperr.NotFoundf("query history is disabled"))
		return
	}
	run, err := h.history.GetQuery(router.Segment(r, 3))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}
