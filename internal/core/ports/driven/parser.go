package driven

import "github.com/custodia-labs/eat-cli/internal/core/domain"

// MenuParser turns one raw menu publication into daily menus.
// Each parser handles a single source format.
type MenuParser interface {
	// Source returns the source name the parser handles (e.g. "fmi-bistro").
	Source() string

	// SupportedMIMETypes returns the MIME types the parser accepts.
	SupportedMIMETypes() []string

	// Parse extracts the menus of raw in document order.
	// Days that cannot be extracted are omitted; structurally invalid
	// input returns an error wrapping domain.ErrInvalidInput.
	Parse(raw *domain.RawDocument) ([]domain.Menu, error)
}

// MenuParserRegistry selects the parser for a source.
type MenuParserRegistry interface {
	// Get returns the parser for source.
	// Returns an error wrapping domain.ErrUnsupportedType when none exists.
	Get(source string) (MenuParser, error)

	// Sources returns the registered source names, sorted.
	Sources() []string
}
