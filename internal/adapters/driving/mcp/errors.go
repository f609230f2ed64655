// Package mcp provides an MCP (Model Context Protocol) server adapter for eat.
// It lets AI assistants look up canteens and the published menus.
package mcp

import "errors"

// ErrMissingMenuService is returned when the menu service is not provided.
var ErrMissingMenuService = errors.New("mcp: menu service is required")
