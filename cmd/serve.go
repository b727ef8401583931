package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"schedsim/api"
	"schedsim/internal/logging"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := api.NewApp(a.cfg, a.log)
			go func() {
				<-ctx.Done()
				if err := app.ShutdownWithContext(context.Background()); err != nil {
					a.log.Error("shutdown failed", logging.ErrAttr(err))
				}
			}()

			addr := fmt.Sprintf(":%d", a.cfg.Port)
			a.log.Info("listening", slog.String("addr", addr))
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 9095, "listen port (overrides config)")
	return cmd
}
