package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abdulmoizz44/ebryx-k8s-project/internal/api/rest"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/config"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/health"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/http/middleware"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/log"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/metrics"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/netutil"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/runner"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/version"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logger := log.NewLogger(cfg)

	registry := metrics.Init(logger)
	state := health.NewState()

	adminCIDRs := netutil.MustParseCIDRs(cfg.Server.AdminAllowCIDRs)
	api := rest.New(rest.Options{
		State:      state,
		Registry:   registry,
		AdminCIDRs: adminCIDRs,
		Pprof:      cfg.Server.Pprof,
	})

	// wrap routes with middlewares (request id, access log, metrics)
	handler := middleware.RequestID(middleware.AccessLog(logger)(middleware.Metrics(api.Handler())))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	g := &runner.Group{}
	serverErrCh := g.Go(ctx, func(ctx context.Context) error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	logger.Info().Int("port", cfg.Server.Port).Str("version", version.Version).Msg("health check service started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-ctx.Done():
	case s := <-sigCh:
		logger.Info().Str("signal", s.String()).Msg("shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			logger.Error().Err(err).Msg("http server error")
			os.Exit(1)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	g.Wait()
	logger.Info().Msg("shutdown complete")
}
