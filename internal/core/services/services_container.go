package services

import (
	"github.com/SscSPs/fx_lookup_app/internal/core/domain"
	"github.com/SscSPs/fx_lookup_app/internal/core/ports"
	portssvc "github.com/SscSPs/fx_lookup_app/internal/core/ports/services"
	"github.com/SscSPs/fx_lookup_app/internal/platform/config"
	"github.com/SscSPs/fx_lookup_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, getter ports.HTTPGetter, m *metrics.LookupMetrics) *portssvc.ServiceContainer {
	headers := ResponseHeadersFromConfig(cfg)

	return &portssvc.ServiceContainer{
		RateLookup: NewRateLookupService(
			RateLookupConfig{BaseURL: cfg.ExchangeAPIBaseURL, Headers: headers},
			getter,
			WithMetrics(m),
		),
		URLShortener: NewURLShortenerService(
			URLShortenerConfig{APIURL: cfg.ShortenerAPIURL, Headers: headers},
			getter,
			WithMetrics(m),
		),
	}
}

// ResponseHeadersFromConfig builds the header set every response carries.
func ResponseHeadersFromConfig(cfg *config.Config) domain.ResponseHeaders {
	headers := domain.DefaultResponseHeaders()
	if cfg.CORSAllowOrigin != "" {
		headers.AllowOrigin = cfg.CORSAllowOrigin
	}
	if cfg.CORSAllowHeaders != "" {
		headers.AllowHeaders = cfg.CORSAllowHeaders
	}
	if cfg.CORSAllowMethods != "" {
		headers.AllowMethods = cfg.CORSAllowMethods
	}
	return headers
}
