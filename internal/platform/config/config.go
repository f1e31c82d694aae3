package config

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Upstream endpoints used when nothing else is configured.
const (
	DefaultExchangeAPIBaseURL = "https://open.er-api.com/v6/latest/"
	DefaultShortenerAPIURL    = "https://is.gd/create.php"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream services
	ExchangeAPIBaseURL string `mapstructure:"EXCHANGE_API_BASE_URL"`
	ShortenerAPIURL    string `mapstructure:"SHORTENER_API_URL"`

	// Headers attached to every response, also used for CORS preflight
	CORSAllowOrigin  string `mapstructure:"CORS_ALLOW_ORIGIN"`
	CORSAllowHeaders string `mapstructure:"CORS_ALLOW_HEADERS"`
	CORSAllowMethods string `mapstructure:"CORS_ALLOW_METHODS"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("EXCHANGE_API_BASE_URL", DefaultExchangeAPIBaseURL)
	v.SetDefault("SHORTENER_API_URL", DefaultShortenerAPIURL)
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")
	v.SetDefault("CORS_ALLOW_HEADERS", "Content-Type,Authorization")
	v.SetDefault("CORS_ALLOW_METHODS", "GET,POST,OPTIONS")

	// Environment variables override the defaults above
	v.AutomaticEnv()

	return fromViper(v), nil
}

// fromViper reads every key, falling back to defaults for unusable values.
func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.ExchangeAPIBaseURL = urlOrDefault("EXCHANGE_API_BASE_URL", v.GetString("EXCHANGE_API_BASE_URL"), DefaultExchangeAPIBaseURL)
	if !strings.HasSuffix(cfg.ExchangeAPIBaseURL, "/") {
		cfg.ExchangeAPIBaseURL += "/"
	}
	cfg.ShortenerAPIURL = urlOrDefault("SHORTENER_API_URL", v.GetString("SHORTENER_API_URL"), DefaultShortenerAPIURL)

	cfg.CORSAllowOrigin = v.GetString("CORS_ALLOW_ORIGIN")
	cfg.CORSAllowHeaders = v.GetString("CORS_ALLOW_HEADERS")
	cfg.CORSAllowMethods = v.GetString("CORS_ALLOW_METHODS")

	return cfg
}

var validate = validator.New()

// urlOrDefault returns value when it is an absolute http(s) URL, fallback otherwise.
func urlOrDefault(key, value, fallback string) string {
	value = strings.TrimSpace(value)
	if err := validate.Var(value, "required,http_url"); err != nil {
		if value != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, value, fallback)
		}
		return fallback
	}
	return value
}
