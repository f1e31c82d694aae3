package config_test

import (
	"testing"

	"github.com/SscSPs/fx_lookup_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "IS_PRODUCTION", "EXCHANGE_API_BASE_URL", "SHORTENER_API_URL",
		"CORS_ALLOW_ORIGIN", "CORS_ALLOW_HEADERS", "CORS_ALLOW_METHODS"} {
		t.Setenv(key, "")
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, config.DefaultExchangeAPIBaseURL, cfg.ExchangeAPIBaseURL)
	assert.Equal(t, config.DefaultShortenerAPIURL, cfg.ShortenerAPIURL)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("EXCHANGE_API_BASE_URL", "http://localhost:8081/v6/latest")
	t.Setenv("SHORTENER_API_URL", "https://short.example.com/create.php")
	t.Setenv("CORS_ALLOW_ORIGIN", "https://app.example.com")
	t.Setenv("CORS_ALLOW_HEADERS", "Content-Type")
	t.Setenv("CORS_ALLOW_METHODS", "GET,OPTIONS")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "http://localhost:8081/v6/latest/", cfg.ExchangeAPIBaseURL)
	assert.Equal(t, "https://short.example.com/create.php", cfg.ShortenerAPIURL)
	assert.Equal(t, "https://app.example.com", cfg.CORSAllowOrigin)
	assert.Equal(t, "Content-Type", cfg.CORSAllowHeaders)
	assert.Equal(t, "GET,OPTIONS", cfg.CORSAllowMethods)
}

func TestLoadConfig_InvalidURLFallsBack(t *testing.T) {
	t.Setenv("EXCHANGE_API_BASE_URL", "not a url")
	t.Setenv("SHORTENER_API_URL", "ftp://is.gd/create.php")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultExchangeAPIBaseURL, cfg.ExchangeAPIBaseURL)
	assert.Equal(t, config.DefaultShortenerAPIURL, cfg.ShortenerAPIURL)
}
