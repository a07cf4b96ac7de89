package api

import (
	"go-property-analyzer/internal/api/handler"
	"go-property-analyzer/pkg/router"

	_ "go-property-analyzer/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.POST("/api/v1/datasets", h.LoadDataset)
	r.GET("/api/v1/datasets", h.ListDatasets)
	r.GET("/api/v1/datasets/*", h.GetDataset)
	r.DELETE("/api/v1/datasets/*", h.DeleteDataset)

	r.GET("/api/v1/search", h.Search)
	r.GET("/api/v1/keyword", h.Keyword)
	r.POST("/api/v1/classify", h.Classify)
	r.GET("/api/v1/histogram", h.Histogram)

	r.POST("/api/v1/reports", h.CreateReport)

	r.POST("/api/v1/exports", h.CreateExport)
	r.GET("/api/v1/exports/*/*", h.DownloadExport)

	r.GET("/api/v1/queries", h.ListQueries)
	r.GET("/api/v1/queries/*", h.GetQuery)

	r.GET("/swagger/*", httpSwagger.WrapHandler.ServeHTTP)
}
