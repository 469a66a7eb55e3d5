package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/coachdesk/dashboard/api"
	"github.com/coachdesk/dashboard/charts"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides HTTP_ADDR)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API over HTTP",
	Args:  cobra.NoArgs,
	RunE:  withApp(runServe),
}

func runServe(cmd *cobra.Command, args []string, a *app) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = a.config.HTTPAddr
	}

	if !a.config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(a.service, a.log, api.RouterConfig{
		Metrics: a.config.MetricsEnabled,
		Charts:  charts.DefaultConfig(),
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
