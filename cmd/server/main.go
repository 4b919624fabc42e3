// Package main is the entry point for the offer exploration engine.
//
//	@title						Offer Exploration API
//	@version					1.0.0
//	@description				A server-side flight offer exploration engine: sessions accumulate streamed proposal batches and serve filtered, faceted, sorted, paginated views.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/offer-exploration-engine/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/offer-exploration-engine/docs"

	"github.com/flight-search/offer-exploration-engine/internal/adapter/feed"
	explorehttp "github.com/flight-search/offer-exploration-engine/internal/adapter/http"
	"github.com/flight-search/offer-exploration-engine/internal/adapter/http/middleware"
	"github.com/flight-search/offer-exploration-engine/internal/config"
	"github.com/flight-search/offer-exploration-engine/internal/infrastructure/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	janitorInterval = time.Minute
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "offer-explorer",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Int("page_size", cfg.Engine.PageSize).
		Bool("feed_enabled", cfg.FeedEnabled()).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Session registry
	registry := explorehttp.NewRegistry(cfg.Engine.PageSize, cfg.Engine.SessionTTL, log.Logger)

	// Setup routes
	handler := explorehttp.NewSessionHandler(registry, log.Logger)
	explorehttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Background workers share one cancellation scope.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runJanitor(ctx, registry)

	if cfg.FeedEnabled() {
		go runFeedPoller(ctx, cfg, registry, log)
	}

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, cancel, log)
}

// runJanitor periodically evicts sessions that have been idle past the TTL.
func runJanitor(ctx context.Context, registry *explorehttp.Registry) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			registry.PruneExpired()
		}
	}
}

// runFeedPoller streams proposal batches from the configured search
// backend into a dedicated session until the feed reports completion.
func runFeedPoller(ctx context.Context, cfg *config.Config, registry *explorehttp.Registry, log *logger.Logger) {
	session := registry.Create()
	feedLog := log.WithSession(session.ID())

	feedLog.Info().
		Str("feed_url", cfg.Feed.URL).
		Msg("Feed poller started")

	client := feed.NewClient(cfg.Feed.URL, cfg.Feed.FetchTimeout)
	poller := feed.NewPoller(client, session, cfg.Feed.PollInterval, feedLog.Logger)

	if err := poller.Run(ctx); err != nil {
		feedLog.Error().Err(err).Msg("Feed poller stopped")
		return
	}
	feedLog.Info().Msg("Feed poller finished")
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, cancel context.CancelFunc, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	// Stop background workers first
	cancel()

	ctx, cancelTimeout := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelTimeout()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
