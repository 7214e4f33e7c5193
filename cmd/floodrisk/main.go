package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/flood-risk-service/internal/adapter/httpapi"
	kafkaadapter "github.com/couchcryptid/flood-risk-service/internal/adapter/kafka"
	"github.com/couchcryptid/flood-risk-service/internal/adapter/mlmodel"
	"github.com/couchcryptid/flood-risk-service/internal/adapter/osrm"
	"github.com/couchcryptid/flood-risk-service/internal/config"
	"github.com/couchcryptid/flood-risk-service/internal/domain"
	"github.com/couchcryptid/flood-risk-service/internal/observability"
	"github.com/couchcryptid/flood-risk-service/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	catalog := domain.DelhiCatalog()

	// Risk scorer: trained model behind the rule-based fallback, or the
	// rule alone when no model endpoint is configured.
	var primary domain.RiskScorer
	if cfg.ModelEnabled {
		primary = mlmodel.NewClient(cfg.ModelURL, cfg.ModelTimeout, logger)
		logger.Info("model scoring enabled", "url", cfg.ModelURL, "timeout", cfg.ModelTimeout)
	} else {
		logger.Info("model scoring disabled, using rule classifier")
	}
	scorer := domain.NewFallbackScorer(primary, logger)
	scorer.OnFallback = metrics.ModelFallbacks.Inc

	routingClient := osrm.NewClient(cfg.RoutingBaseURL, cfg.RoutingTimeout, metrics, logger)
	planner := osrm.NewCachedPlanner(routingClient, cfg.RoutingCacheSize, metrics)

	var alerts domain.AlertPublisher
	var alertWriter *kafkaadapter.AlertWriter
	if cfg.AlertsEnabled {
		alertWriter = kafkaadapter.NewAlertWriter(cfg, logger)
		alerts = alertWriter
		logger.Info("alert publishing enabled", "topic", cfg.KafkaAlertTopic)
	} else {
		logger.Info("alert publishing disabled")
	}

	reports := domain.NewReportGenerator(nil)

	svc := service.New(catalog, scorer, reports, planner, alerts, logger, metrics)
	srv := httpapi.NewServer(cfg.HTTPAddr, svc, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if alertWriter != nil {
		if err := alertWriter.Close(); err != nil {
			logger.Error("alert writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
