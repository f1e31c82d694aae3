package ports

import (
	"context"

	"github.com/SscSPs/fx_lookup_app/internal/core/domain"
)

// HTTPGetter issues a single GET and returns the status and full body.
// Any status is a successful call; only transport failures are returned as errors.
type HTTPGetter interface {
	Get(ctx context.Context, url string) (*domain.UpstreamReply, error)
}
