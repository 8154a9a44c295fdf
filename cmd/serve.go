package main

import (
	"context"
	"curvelab/internal/api"
	"curvelab/internal/api/handler/v1handler"
	"curvelab/internal/config"
	"curvelab/internal/plotter"
	"curvelab/internal/worker"
	"curvelab/pkg/curve"
	"curvelab/pkg/logger"
	"curvelab/pkg/metrics"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context,
	cfg *config.Config,
	p plotter.Plotter,
	riverClient *river.Client[pgx.Tx]) func(ctx context.Context) {
	server, err := api.NewServer(ctx, api.Deps{
		Deps:        v1handler.Deps{Plotter: p},
		Registerer:  prometheus.DefaultRegisterer,
		Gatherer:    prometheus.DefaultGatherer,
		RiverClient: riverClient,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background render workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			meterProvider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			engineMetrics, err := metrics.NewEngine(meterProvider)
			if err != nil {
				logger.Fatal(ctx, "could not create engine metrics", zap.Error(err))
			}

			p := plotter.New(plotter.Deps{
				Storage: strg,
				Cache:   curve.NewCache(cfg.Engine.CacheTTL),
				Metrics: engineMetrics,
			}, plotter.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, p, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start render workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, p, riverClient)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping render workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop render workers", zap.Error(err))
			}
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
