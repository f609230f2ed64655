package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

// MenuService normalises menu publications and serves published menus.
type MenuService interface {
	// Parse runs the parser of raw.Source and groups the result into weeks.
	Parse(ctx context.Context, raw *domain.RawDocument) (*ParseResult, error)

	// Publish writes every week of result plus the combined document.
	Publish(ctx context.Context, result *ParseResult) error

	// Fetch downloads the current publication of a catalogued location.
	Fetch(ctx context.Context, location string) (*domain.RawDocument, error)

	// Menu returns the published day of location on date.
	// Returns an error wrapping domain.ErrNotFound when there is none.
	Menu(ctx context.Context, location string, date time.Time) (*domain.Day, error)

	// Combined returns the published combined document of location.
	Combined(ctx context.Context, location string) (*domain.CombinedDocument, error)

	// Locations lists the locations with published menus.
	Locations(ctx context.Context) ([]string, error)

	// Sources lists the parseable source names.
	Sources() []string
}

// ParseResult holds the outcome of one parse-and-aggregate pass.
type ParseResult struct {
	// Location the menus belong to.
	Location string

	// Menus in document order.
	Menus []domain.Menu

	// Weeks ascending by (year, number).
	Weeks []*domain.Week
}

// Combined returns the combined document of the result.
func (r *ParseResult) Combined() domain.CombinedDocument {
	weeks := r.Weeks
	if weeks == nil {
		weeks = []*domain.Week{}
	}
	return domain.CombinedDocument{
		CanteenID: r.Location,
		Weeks:     weeks,
	}
}
