package commands

import (
	"go-property-analyzer/internal/api"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var serveAddrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the loaded datasets over the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *session.cfg
		if serveAddrFlag != "" {
			cfg.Server.Addr = serveAddrFlag
		}
		pterm.Info.Printf("Serving %d datasets on %s (docs at /swagger/index.html)\n", session.datasets.Len(), cfg.Server.Addr)
		return api.Serve(cmd.Context(), cfg, session.datasets)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "Listen address (defaults to server.addr)")
}
