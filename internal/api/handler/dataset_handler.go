package handler

import (
	"net/http"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/ingest"
	"go-property-analyzer/internal/model"
	"go-property-analyzer/pkg/router"
)

// LoadDataset registers the request body as a dataset
// @Summary Load a dataset
// @Description Parse a CSV or JSON body and register it under the given name, replacing any dataset with that name
// @Tags datasets
// @Accept text/csv
// @Accept json
// @Produce json
// @Param name query string true "Dataset name"
// @Param format query string false "csv or json (defaults from the name's extension)"
// @Success 201 {object} model.DatasetSummary "Dataset loaded"
// @Failure 400 {object} model.ErrorResponse "Invalid request"
// @Router /datasets [post]
func (h *Handler) LoadDataset(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, apperr.InvalidArgumentf("name is required"))
		return
	}

	format := ingest.DetectFormat(name)
	if raw := r.URL.Query().Get("format"); raw != "" {
		parsed, err := ingest.ParseFormat(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		format = parsed
	}

	ds, err := h.loader.LoadReader(name, format, r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, model.Summarize(ds))
}

// ListDatasets lists the registered datasets
// @Summary List datasets
// @Description Names, columns and record counts of every registered dataset in registration order
// @Tags datasets
// @Produce json
// @Success 200 {array} model.DatasetSummary
// @Router /datasets [get]
func (h *Handler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	summaries := []model.DatasetSummary{}
	for _, ds := range h.datasets.All() {
		summaries = append(summaries, model.Summarize(ds))
	}
	writeJSON(w, http.StatusOK, summaries)
}

// GetDataset returns one dataset with its records
// @Summary Get a dataset
// @Tags datasets
// @Produce json
// @Param name path string true "Dataset name"
// @Success 200 {object} model.Dataset
// @Failure 404 {object} model.ErrorResponse "Dataset not found"
// @Router /datasets/{name} [get]
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := h.datasets.Get(router.Segment(r, 3))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

// DeleteDataset removes a dataset
// @Summary Delete a dataset
// @Tags datasets
// @Param name path string true "Dataset name"
// @Success 204 "Dataset removed"
// @Failure 404 {object} model.ErrorResponse "Dataset not found"
// @Router /datasets/{name} [delete]
func (h *Handler) DeleteDataset(w http.ResponseWriter, r *http.Request) {
	name := router.Segment(r, 3)
	if !h.datasets.Remove(name) {
		writeError(w, apperr.NotFoundf("dataset %q", name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
