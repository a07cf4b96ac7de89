package handler

import (
	"net/http"
	"strconv"
	"strings"

	"go-property-analyzer/internal/aggregate"
	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/model"
	"go-property-analyzer/internal/query"
)

// Search runs a free-text search across every dataset
// @Summary Search all datasets
// @Description Case-insensitive substring match against every field of every record. An empty query returns everything.
// @Tags queries
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} map[string]interface{} "Matches per dataset in registration order"
// @Router /search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	rs := query.SearchAll(h.datasets, q)
	id := h.record(model.OpSearch, "", map[string]string{"q": q}, rs.TotalRecords(), nil)
	writeJSON(w, http.StatusOK, queryResponse{QueryID: id, Total: rs.TotalRecords(), Results: rs})
}

// Keyword retrieves records whose text column contains a keyword
// @Summary Keyword retrieval
// @Description Records whose text column contains the keyword, case-insensitively, per dataset. Datasets without the column yield no records.
// @Tags queries
// @Produce json
// @Param keyword query string true "Keyword"
// @Param column query string false "Text column (defaults to the configured classify column)"
// @Success 200 {object} map[string]interface{} "Matches per dataset"
// @Failure 400 {object} model.ErrorResponse "Missing keyword"
// @Router /keyword [get]
func (h *Handler) Keyword(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		writeError(w, apperr.InvalidArgumentf("keyword is required"))
		return
	}
	column := r.URL.Query().Get("column")
	if column == "" {
		column = h.cfg.Classify.Column
	}

	rs := query.RetrieveAll(h.datasets, column, keyword)
	id := h.record(model.OpKeyword, "", map[string]string{"column": column, "keyword": keyword}, rs.TotalRecords(), nil)
	writeJSON(w, http.StatusOK, queryResponse{QueryID: id, Total: rs.TotalRecords(), Results: rs})
}

// Classify keeps records matching any keyword of a group
// @Summary Keyword group classification
// @Description Records whose text column contains at least one keyword of the group. With countOnly, returns per-dataset counts.
// @Tags queries
// @Accept json
// @Produce json
// @Param request body model.ClassifyRequest true "Classification request"
// @Success 200 {object} map[string]interface{} "Matches or counts per dataset"
// @Failure 400 {object} model.ErrorResponse "Invalid request payload"
// @Router /classify [post]
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req model.ClassifyRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Column == "" {
		req.Column = h.cfg.Classify.Column
	}
	if len(req.Keywords) == 0 {
		req.Keywords = h.cfg.Classify.Keywords
	}

	rs := query.ClassifyAll(h.datasets, req.Column, query.KeywordGroup(req.Keywords))
	params := map[string]string{
		"column":    req.Column,
		"keywords":  strings.Join(req.Keywords, ","),
		"countOnly": strconv.FormatBool(req.CountOnly),
	}
	id := h.record(model.OpClassify, "", params, rs.TotalRecords(), nil)

	if req.CountOnly {
		counts := model.CountResponse{Counts: []model.DatasetCount{}, Total: rs.TotalRecords()}
		rs.Each(func(name string, ds *model.Dataset) {
			counts.Counts = append(counts.Counts, model.DatasetCount{Dataset: name, Count: ds.Len()})
		})
		writeJSON(w, http.StatusOK, queryResponse{QueryID: id, Total: counts.Total, Results: counts})
		return
	}
	writeJSON(w, http.StatusOK, queryResponse{QueryID: id, Total: rs.TotalRecords(), Results: rs})
}

// Histogram bins a numeric column of one dataset
// @Summary Histogram
// @Description Equal-width histogram of a numeric column, optionally restricted to one category value
// @Tags aggregates
// @Produce json
// @Param dataset query string true "Dataset name"
// @Param column query string true "Numeric column"
// @Param bins query int false "Bin count (defaults to histogram.bins)"
// @Param categoryColumn query string false "Category column"
// @Param categoryValue query string false "Category value"
// @Success 200 {object} model.Histogram
// @Failure 400 {object} model.ErrorResponse "Invalid column or bin count"
// @Failure 404 {object} model.ErrorResponse "Dataset not found"
// @Router /histogram [get]
func (h *Handler) Histogram(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	name := params.Get("dataset")
	column := params.Get("column")
	if name == "" || column == "" {
		writeError(w, apperr.InvalidArgumentf("dataset and column are required"))
		return
	}
	bins, err := intParam(r, "bins", h.cfg.Histogram.Bins)
	if err != nil {
		writeError(w, err)
		return
	}

	ds, err := h.datasets.Get(name)
	if err != nil {
		writeError(w, err)
		return
	}
	hist, err := aggregate.HistogramWhere(ds, column, bins, params.Get("categoryColumn"), params.Get("categoryValue"))

	logged := map[string]string{
		"column":         column,
		"bins":           strconv.Itoa(bins),
		"categoryColumn": params.Get("categoryColumn"),
		"categoryValue":  params.Get("categoryValue"),
	}
	h.record(model.OpHistogram, name, logged, hist.Total(), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hist)
}
