package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eat-cli/internal/logger"
)

// Ensure HTTPFetcher implements the interface.
var _ driven.Fetcher = (*HTTPFetcher)(nil)

// Default configuration values.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "eat-cli"

	// MaxBodySize caps a downloaded publication.
	MaxBodySize = 16 << 20
)

// Config holds configuration for the HTTP fetcher.
type Config struct {
	// Rate is the number of requests per second (default: 1).
	Rate float64

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// UserAgent is sent with every request (default: eat-cli).
	UserAgent string

	// MaxBodySize rejects larger responses (default: 16 MiB).
	MaxBodySize int64
}

// HTTPFetcher downloads publications over HTTP.
type HTTPFetcher struct {
	client    *http.Client
	limiter   *RateLimiter
	userAgent string
	maxBody   int64
}

// NewHTTPFetcher creates a new HTTP fetcher.
func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = MaxBodySize
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:   NewRateLimiter(cfg.Rate),
		userAgent: cfg.UserAgent,
		maxBody:   cfg.MaxBodySize,
	}
}

// Fetch downloads uri. Source and location are left for the caller to set.
func (f *HTTPFetcher) Fetch(ctx context.Context, uri string) (*domain.RawDocument, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	logger.Debug("GET %s", uri)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	f.limiter.Observe(resp)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", uri, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch %s: status %d", uri, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(body)) > f.maxBody {
		return nil, fmt.Errorf("fetch %s: body exceeds %d bytes", uri, f.maxBody)
	}

	return &domain.RawDocument{
		URI:      uri,
		MIMEType: mediaType(resp.Header.Get("Content-Type"), body),
		Content:  body,
	}, nil
}

// mediaType returns the media type of a response without parameters,
// sniffing the body when the header is missing or malformed.
func mediaType(header string, body []byte) string {
	if header != "" {
		if mt, _, err := mime.ParseMediaType(header); err == nil {
			return mt
		}
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(body))
	return mt
}
