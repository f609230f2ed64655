package mcp

import (
	"github.com/custodia-labs/eat-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Menu serves published menus.
	Menu driving.MenuService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Menu == nil {
		return ErrMissingMenuService
	}
	return nil
}
