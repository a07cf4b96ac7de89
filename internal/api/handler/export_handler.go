package handler

import (
	"net/http"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/model"
	"go-property-analyzer/pkg/router"
)

// CreateExport writes a dataset to a CSV or JSON file
// @Summary Export a dataset
// @Description Writes the named dataset to a new export run directory and returns its download URL
// @Tags exports
// @Accept json
// @Produce json
// @Param request body model.ExportRequest true "Export request"
// @Success 201 {object} model.ExportResult
// @Failure 400 {object} model.ErrorResponse "Unknown format"
// @Failure 404 {object} model.ErrorResponse "Dataset not found"
// @Router /exports [post]
func (h *Handler) CreateExport(w http.ResponseWriter, r *http.Request) {
	var req model.ExportRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ds, err := h.datasets.Get(req.Dataset)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.exports.ExportDataset(ds, req.Format)
	h.record(model.OpExport, req.Dataset, map[string]string{"format": req.Format, "path": result.Path}, result.RecordCount, err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// DownloadExport serves a previously written export file
// @Summary Download an export
// @Tags exports
// @Produce octet-stream
// @Param id path string true "Export run ID"
// @Param file path string true "File name"
// @Success 200 {file} file
// @Failure 404 {object} model.ErrorResponse "Export not found"
// @Router /exports/{id}/{file} [get]
func (h *Handler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	runID, fileName := router.Segment(r, 3), router.Segment(r, 4)
	path, err := h.exports.Output().ResolveFile(runID, fileName)
	if err != nil {
		writeError(w, apperr.NotFoundf("export %s/%s", runID, fileName))
		return
	}

	switch h.exports.Output().FileType(fileName) {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
	case "json":
		w.Header().Set("Content-Type", "application/json")
	}
	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
	http.ServeFile(w, r, path)
}
