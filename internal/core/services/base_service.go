package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/SscSPs/fx_lookup_app/internal/core/domain"
	"github.com/SscSPs/fx_lookup_app/internal/middleware"
	"github.com/SscSPs/fx_lookup_app/internal/platform/metrics"
)

// fallbackErrorMessage is used when a failure carries no message of its own.
const fallbackErrorMessage = "Internal server error"

// BaseService provides common functionality for all invocation handlers
type BaseService struct {
	name    string
	headers domain.ResponseHeaders
	metrics *metrics.LookupMetrics
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx).With(slog.String("service", s.name))
}

// headersOrDefault falls back to the default header set when none is configured.
func headersOrDefault(h domain.ResponseHeaders) domain.ResponseHeaders {
	if h == (domain.ResponseHeaders{}) {
		return domain.DefaultResponseHeaders()
	}
	return h
}

// respond builds the single Response of an invocation and records it.
func (s *BaseService) respond(statusCode int, body string) domain.Response {
	s.metrics.RecordInvocation(s.name, statusCode)
	return domain.Response{
		StatusCode: statusCode,
		Headers:    s.headers.Map(),
		Body:       body,
	}
}

// respondError wraps err's message in the standard error body.
func (s *BaseService) respondError(statusCode int, err error) domain.Response {
	msg := fallbackErrorMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	// Encoding a single string field cannot fail.
	body, _ := encodeJSON(domain.ErrorResponse{Error: msg})
	return s.respond(statusCode, body)
}

// encodeJSON serializes v compactly without escaping HTML characters.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
