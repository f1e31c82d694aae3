package services

import (
	"context"

	"github.com/SscSPs/fx_lookup_app/internal/core/domain"
)

// InvocationHandler maps exactly one request to exactly one response.
type InvocationHandler interface {
	// Handle never returns an error; every failure is encoded in the Response.
	Handle(ctx context.Context, req domain.Request) domain.Response
}

// RateLookupSvc looks up the latest exchange rates for one base currency.
type RateLookupSvc interface {
	InvocationHandler
}

// URLShortenerSvc shortens one long URL.
type URLShortenerSvc interface {
	InvocationHandler
}
