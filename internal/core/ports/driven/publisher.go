package driven

import "github.com/custodia-labs/eat-cli/internal/core/domain"

// MenuWriter publishes the aggregated weeks of one location.
type MenuWriter interface {
	// WriteWeek stores a single week document.
	WriteWeek(location string, week *domain.Week) error

	// WriteCombined stores the combined document of a location.
	WriteCombined(doc domain.CombinedDocument) error
}

// MenuReader reads published documents back.
type MenuReader interface {
	// ReadCombined loads the combined document of location.
	// Returns an error wrapping domain.ErrNotFound when nothing was published.
	ReadCombined(location string) (*domain.CombinedDocument, error)

	// Locations lists the locations with a combined document, sorted.
	Locations() ([]string, error)
}

// FeedExporter writes a location's weeks in an external feed format.
type FeedExporter interface {
	// Export writes the feed for location.
	Export(location string, weeks []*domain.Week) error
}
