package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/btechwala999/Ignitia-client/internal/app"
	"github.com/btechwala999/Ignitia-client/internal/logger"
	"github.com/btechwala999/Ignitia-client/internal/web"
)

func webCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the localhost dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				// Resolve the session before serving so the guard never
				// answers from a bootstrapping state.
				a.Session.Bootstrap(ctx)

				if addr == "" {
					addr = a.Config.WebAddr
				}
				server := web.New(addr, a.Session, a.Client)

				errCh := make(chan error, 1)
				go func() {
					errCh <- server.Run()
				}()

				logger.Info("dashboard listening", map[string]any{"addr": addr})

				select {
				case err := <-errCh:
					return err
				case <-ctx.Done():
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to IGNITIA_WEB_ADDR)")
	return cmd
}
