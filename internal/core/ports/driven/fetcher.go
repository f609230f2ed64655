package driven

import (
	"context"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

// Fetcher downloads menu publications.
type Fetcher interface {
	// Fetch retrieves uri and returns its body as a raw document.
	// Source, Location, Year and Week are left for the caller to fill.
	Fetch(ctx context.Context, uri string) (*domain.RawDocument, error)
}

// TextExtractor converts binary publications (PDF) into layout text.
type TextExtractor interface {
	// Extract returns the layout-preserving text of content.
	Extract(ctx context.Context, content []byte) (string, error)
}
