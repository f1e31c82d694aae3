package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

// currencyField is the only request field the rate lookup reads.
const currencyField = "currency"

// RateLookupConfig is owned by the service from construction on.
type RateLookupConfig struct {
	BaseURL string
	Headers domain.ResponseHeaders
}

// rateLookupService implements the RateLookupSvc interface
type rateLookupService struct {
	BaseService
	baseURL string
	getter  ports.HTTPGetter
}

// ServiceOption is a functional option shared by the invocation handlers
type ServiceOption func(*BaseService)

// WithMetrics records invocations and upstream calls on m.
func WithMetrics(m *metrics.LookupMetrics) ServiceOption {
	return func(s *BaseService) {
		s.metrics = m
	}
}

// NewRateLookupService creates a rate lookup handler that fetches through getter.
func NewRateLookupService(cfg RateLookupConfig, getter ports.HTTPGetter, options ...ServiceOption) portssvc.RateLookupSvc {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultExchangeAPIBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	svc := &rateLookupService{
		BaseService: BaseService{
			name:    metrics.ServiceRateLookup,
			headers: headersOrDefault(cfg.Headers),
		},
		baseURL: baseURL,
		getter:  getter,
	}

	for _, option := range options {
		option(&svc.BaseService)
	}

	return svc
}

// Handle validates the currency field, fetches the latest rates and relays them.
func (s *rateLookupService) Handle(ctx context.Context, req domain.Request) domain.Response {
	logger := s.GetLogger(ctx)

	raw, _ := req.Field(currencyField)
	code, err := domain.ParseCurrencyCode(raw)
	if err != nil {
		logger.Warn("Rejected rate lookup request", slog.String("error", err.Error()))
		return s.respondError(http.StatusBadRequest, err)
	}

	logger = logger.With(slog.String("currency", code.String()))

	body, err := s.fetchRates(ctx, code)
	if err != nil {
		logger.Error("Rate lookup failed", slog.String("error", err.Error()))
		return s.respondError(http.StatusBadGateway, err)
	}

	logger.Info("Rate lookup succeeded")
	return s.respond(http.StatusOK, body)
}

// fetchRates calls the rate service and returns its JSON body re-serialized.
func (s *rateLookupService) fetchRates(ctx context.Context, code domain.CurrencyCode) (string, error) {
	endpoint := s.baseURL + url.PathEscape(code.String())

	start := time.Now()
	body, err := s.getRates(ctx, endpoint)
	s.metrics.RecordUpstream(s.name, outcomeOf(err), time.Since(start))

	return body, err
}

func (s *rateLookupService) getRates(ctx context.Context, endpoint string) (string, error) {
	reply, err := s.getter.Get(ctx, endpoint)
	if err != nil {
		return "", err
	}

	if !reply.OK() {
		return "", &apperrors.UpstreamError{
			StatusCode: reply.StatusCode,
			Body:       string(reply.Body),
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, reply.Body); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidUpstreamPayload, err)
	}

	return buf.String(), nil
}

// outcomeOf classifies an upstream call result for metrics.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, apperrors.ErrUpstream):
		return metrics.OutcomeUpstreamError
	case errors.Is(err, apperrors.ErrInvalidUpstreamPayload):
		return metrics.OutcomeInvalidPayload
	default:
		return metrics.OutcomeTransportError
	}
}
