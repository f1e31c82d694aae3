package services

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/fx_lookup_app/internal/apperrors"
	"github.com/SscSPs/fx_lookup_app/internal/core/domain"
	"github.com/SscSPs/fx_lookup_app/internal/core/ports"
	portssvc "github.com/SscSPs/fx_lookup_app/internal/core/ports/services"
	"github.com/SscSPs/fx_lookup_app/internal/platform/config"
	"github.com/SscSPs/fx_lookup_app/internal/platform/metrics"
)

const urlField = "url"

// URLShortenerConfig is owned by the service from construction on.
type URLShortenerConfig struct {
	APIURL  string
	Headers domain.ResponseHeaders
}

// urlShortenerService implements the URLShortenerSvc interface
type urlShortenerService struct {
	BaseService
	apiURL string
	// provider prefixes upstream error messages, e.g. "is.gd".
	provider string
	getter   ports.HTTPGetter
}

// NewURLShortenerService creates a URL shortening handler that calls the API through getter.
func NewURLShortenerService(cfg URLShortenerConfig, getter ports.HTTPGetter, options ...ServiceOption) portssvc.URLShortenerSvc {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = config.DefaultShortenerAPIURL
	}

	provider := "shortener"
	if u, err := url.Parse(apiURL); err == nil && u.Hostname() != "" {
		provider = u.Hostname()
	}

	svc := &urlShortenerService{
		BaseService: BaseService{
			name:    metrics.ServiceURLShortener,
			headers: headersOrDefault(cfg.Headers),
		},
		apiURL:   apiURL,
		provider: provider,
		getter:   getter,
	}

	for _, option := range options {
		option(&svc.BaseService)
	}

	return svc
}

// Handle validates the url field and asks the shortener for a short link.
func (s *urlShortenerService) Handle(ctx context.Context, req domain.Request) domain.Response {
	logger := s.GetLogger(ctx)

	raw, _ := req.Field(urlField)
	longURL, err := domain.ParseLongURL(raw)
	if err != nil {
		logger.Warn("Rejected shorten request", slog.String("error", err.Error()))
		return s.respondError(http.StatusBadRequest, err)
	}

	start := time.Now()
	short, err := s.shorten(ctx, longURL)
	s.metrics.RecordUpstream(s.name, outcomeOf(err), time.Since(start))
	if err != nil {
		logger.Error("URL shortening failed", slog.String("error", err.Error()))
		return s.respondError(http.StatusBadGateway, err)
	}

	body, err := encodeJSON(domain.ShortURLResponse{ShortURL: short})
	if err != nil {
		return s.respondError(http.StatusBadGateway, err)
	}

	logger.Info("URL shortened", slog.String("short_url", short))
	return s.respond(http.StatusOK, body)
}

func (s *urlShortenerService) shorten(ctx context.Context, longURL string) (string, error) {
	endpoint := s.apiURL + "?format=simple&url=" + url.QueryEscape(longURL)

	reply, err := s.getter.Get(ctx, endpoint)
	if err != nil {
		return "", err
	}

	// Only an exact 200 counts; is.gd reports problems with other statuses.
	if reply.StatusCode != http.StatusOK {
		return "", &apperrors.UpstreamError{
			Service:    s.provider,
			StatusCode: reply.StatusCode,
			Body:       string(reply.Body),
		}
	}

	return strings.TrimSpace(string(reply.Body)), nil
}
