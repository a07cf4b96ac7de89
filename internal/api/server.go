package api

import (
	"context"
	"time"

	"go-property-analyzer/internal/api/handler"
	"go-property-analyzer/internal/config"
	"go-property-analyzer/internal/logger"
	"go-property-analyzer/internal/store"
	"go-property-analyzer/pkg/router"
	"go-property-analyzer/pkg/utils"
)

// NewRouter builds the API router over datasets. history may be nil.
func NewRouter(cfg config.Config, datasets *store.Datasets, history handler.QueryLog) *router.Router {
	r := router.New()
	RegisterRoutes(r, handler.New(cfg, datasets, history))
	return r
}

// Serve runs the API until ctx is cancelled. The query history is opened
// from cfg when enabled and closed on return.
func Serve(ctx context.Context, cfg config.Config, datasets *store.Datasets) error {
	if err := utils.NewOutputManager(cfg.Export.Dir).EnsureOutputDirExists(); err != nil {
		return err
	}

	var queryLog handler.QueryLog
	if cfg.History.Enabled {
		history, err := store.OpenHistory(cfg.History.Path)
		if err != nil {
			return err
		}
		defer history.Close()
		queryLog = history
	}

	r := NewRouter(cfg, datasets, queryLog)

	errCh := make(chan error, 1)
	go func() { errCh <- r.Start(cfg.Server.Addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Infow("shutting down", "addr", cfg.Server.Addr)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return r.Shutdown(shutdownCtx)
	}
}
