package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/fx_lookup_app/internal/adapters/upstream"
	"github.com/SscSPs/fx_lookup_app/internal/core/services"
	"github.com/SscSPs/fx_lookup_app/internal/handlers"
	"github.com/SscSPs/fx_lookup_app/internal/middleware"
	"github.com/SscSPs/fx_lookup_app/internal/platform/config"
	"github.com/SscSPs/fx_lookup_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// @title FX Lookup API
// @version 1.0
// @description Relays latest exchange rates from open.er-api.com and short links from is.gd.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	lookupMetrics := metrics.NewLookupMetrics()
	serviceContainer := services.NewServiceContainer(cfg, upstream.NewHTTPGetter(nil), lookupMetrics)

	r := gin.New()

	// Global middleware (logging, recovery, CORS preflight)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(middleware.CORSSettings{
			AllowOrigin:  cfg.CORSAllowOrigin,
			AllowHeaders: cfg.CORSAllowHeaders,
			AllowMethods: cfg.CORSAllowMethods,
		}),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, serviceContainer, lookupMetrics)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("exchange_api_base_url", cfg.ExchangeAPIBaseURL),
		slog.String("shortener_api_url", cfg.ShortenerAPIURL),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
