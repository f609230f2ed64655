package parsers

import (
	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eat-cli/internal/parsers/fmi"
	"github.com/custodia-labs/eat-cli/internal/parsers/ipp"
	"github.com/custodia-labs/eat-cli/internal/parsers/mediziner"
	"github.com/custodia-labs/eat-cli/internal/parsers/studentenwerk"
)

// RegisterDefaults registers all built-in parsers with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(domain.SourceStudentenwerk, func() driven.MenuParser { return studentenwerk.New() })
	r.Register(domain.SourceFMIBistro, func() driven.MenuParser { return fmi.New() })
	r.Register(domain.SourceIPPBistro, func() driven.MenuParser { return ipp.New() })
	r.Register(domain.SourceMedizinerMensa, func() driven.MenuParser { return mediziner.New() })
}

// NewDefaultRegistry returns a registry with all built-in parsers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
