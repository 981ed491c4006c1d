package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/gateway"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/logger"
)

func serveCmd() *cobra.Command {
	var workspace string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the persistence gateway (save, list and download frameworks over HTTP)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, false)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = ws.cfg.Server.Addr
			}

			cleanup := setupLogging(ws.root, debugFlag(cmd), true)
			defer cleanup()
			log := logger.L()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, storage, err := ws.store(ctx)
			if err != nil {
				return err
			}

			srv := gateway.New(store,
				gateway.WithLogger(log),
				gateway.WithStorageName(storage),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "Thesis gateway on %s (storage: %s). Press Ctrl+C to stop.\n", addr, storage)
			if p := logger.Path(); p != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Logs: %s\n", p)
			}
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from thesis.yaml, THESIS_SERVER_ADDR or PORT)")
	return cmd
}
