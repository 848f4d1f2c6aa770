package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"vaccine-feed-ingest-schema/internal/config"
	"vaccine-feed-ingest-schema/internal/handler"
	"vaccine-feed-ingest-schema/internal/logging"
	"vaccine-feed-ingest-schema/internal/metrics"
	"vaccine-feed-ingest-schema/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if err := logging.Setup(config.LogLevel, config.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("cannot set up logging")
	}
	gin.SetMode(config.GinMode)

	// Initialize layers
	registry := metrics.NewRegistry()
	validationService := service.NewValidationService(registry.Metrics)

	router := handler.Router{
		Validation:   handler.NewValidationHandler(validationService),
		Batch:        handler.NewBatchHandler(validationService, config.MaxLineBytes),
		Schema:       handler.NewSchemaHandler(validationService),
		MaxBodyBytes: config.MaxBodyBytes,
	}
	if config.MetricsEnabled {
		router.Metrics = registry.Handler()
	}

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           handler.NewRouter(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("address", config.ServerAddress).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
