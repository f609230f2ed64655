// Package parsers wires the format-specific menu parsers into a registry
// keyed by source name.
package parsers

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.MenuParserRegistry = (*Registry)(nil)

// BuilderFunc creates a MenuParser.
type BuilderFunc func() driven.MenuParser

// Registry maps source names to their parser builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new parser registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a parser builder to the registry.
// Source should be unique and match the parser's Source() return value.
func (r *Registry) Register(source string, builder BuilderFunc) {
	r.builders[source] = builder
}

// Get creates the parser for source.
// Returns an error wrapping domain.ErrUnsupportedType if the source is not registered.
func (r *Registry) Get(source string) (driven.MenuParser, error) {
	builder, ok := r.builders[source]
	if !ok {
		return nil, fmt.Errorf("%w: unknown source: %s", domain.ErrUnsupportedType, source)
	}
	return builder(), nil
}

// Has returns true if a parser for the given source is registered.
func (r *Registry) Has(source string) bool {
	_, ok := r.builders[source]
	return ok
}

// Sources returns all registered source names, sorted.
func (r *Registry) Sources() []string {
	sources := make([]string, 0, len(r.builders))
	for source := range r.builders {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}
