package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/SscSPs/fx_lookup_app/internal/core/domain"
	"github.com/SscSPs/fx_lookup_app/internal/core/ports"
)

// httpGetter implements ports.HTTPGetter on top of net/http.
type httpGetter struct {
	client *http.Client
}

// NewHTTPGetter creates an HTTPGetter. A nil client means http.DefaultClient,
// so no timeout beyond the transport defaults applies.
func NewHTTPGetter(client *http.Client) ports.HTTPGetter {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpGetter{client: client}
}

// Get issues a GET to url and reads the whole body, whatever the status.
func (g *httpGetter) Get(ctx context.Context, url string) (*domain.UpstreamReply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return &domain.UpstreamReply{
		StatusCode: res.StatusCode,
		Body:       body,
	}, nil
}
