package services_test

import (
	"context"

	"github.com/SscSPs/fx_lookup_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock HTTPGetter ---
type MockHTTPGetter struct {
	mock.Mock
}

func (m *MockHTTPGetter) Get(ctx context.Context, url string) (*domain.UpstreamReply, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpstreamReply), args.Error(1)
}

func reply(status int, body string) *domain.UpstreamReply {
	return &domain.UpstreamReply{StatusCode: status, Body: []byte(body)}
}
