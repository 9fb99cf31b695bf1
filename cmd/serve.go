package main

import (
	"context"
	"errors"
	"hellofood/internal/address"
	"hellofood/internal/api"
	"hellofood/internal/api/handler/v1handler"
	"hellofood/internal/config"
	"hellofood/internal/delivery"
	"hellofood/internal/handling"
	"hellofood/internal/meal"
	"hellofood/internal/user"
	"hellofood/internal/worker"
	"hellofood/pkg/logger"
	"hellofood/pkg/metrics"
	"hellofood/pkg/notifier"
	"hellofood/pkg/notifier/mailgun"
	"hellofood/pkg/notifier/queue"
	"hellofood/pkg/storage/postgres"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
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

// setupNotifier picks the notifier for the configured mode. In queue mode it
// also starts the River workers and returns a function stopping them.
func setupNotifier(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) (notifier.Notifier, func(ctx context.Context)) {
	noop := func(context.Context) {}

	switch cfg.Notifications.Mode {
	case config.NotificationsDirect:
		return newMailgun(cfg), noop
	case config.NotificationsQueue:
		riverClient, err := worker.Start(ctx, strg.Pool, newMailgun(cfg), worker.Options{
			MaxWorkers: cfg.Notifications.MaxWorkers,
		})
		if err != nil {
			logger.Fatal(ctx, "could not start workers", zap.Error(err))
		}
		logger.Info(ctx, "notification workers started", zap.Int("max_workers", cfg.Notifications.MaxWorkers))

		return queue.New(strg, cfg.Notifications.MaxAttempts), func(ctx context.Context) {
			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(ctx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		}
	default:
		return notifier.Log{}, noop
	}
}

func newMailgun(cfg *config.Config) *mailgun.Notifier {
	return mailgun.New(mailgun.Options{
		Domain:  cfg.Mailgun.Domain,
		APIKey:  cfg.Mailgun.APIKey,
		Sender:  cfg.Mailgun.Sender,
		APIBase: cfg.Mailgun.APIBase,
		Timeout: cfg.Mailgun.Timeout,
	})
}

func setupMetrics(ctx context.Context) (metric.Meter, *metrics.Metrics) {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	meter := mp.Meter(metrics.MeterName)

	m, err := metrics.New(meter)
	if err != nil {
		logger.Fatal(ctx, "could not create metrics", zap.Error(err))
	}

	return meter, m
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			if cfg.Environment == logger.ProductionEnvironment {
				gin.SetMode(gin.ReleaseMode)
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			meter, m := setupMetrics(ctx)
			ntf, stopWorkers := setupNotifier(ctx, cfg, strg)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Meals:          meal.New(strg),
					Addresses:      address.New(strg),
					Users:          user.New(strg),
					Deliveries:     delivery.New(strg, m),
					HandlingEvents: handling.New(strg, ntf, m),
				},
				Meter: meter,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
