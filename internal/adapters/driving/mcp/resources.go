package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for eat resources.
	uriScheme = "eat://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing published locations.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "menus",
		Name:        "menus",
		Description: "Locations with published menus",
		MIMEType:    "application/json",
	}, s.handleMenusResource)

	// Template for the combined document of a location.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "menus/{location}",
		Name:        "combined-menu",
		Description: "Every published week of one location",
		MIMEType:    "application/json",
	}, s.handleCombinedResource)
}

// handleMenusResource returns the published locations.
func (s *Server) handleMenusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	locations, err := s.ports.Menu.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}

	data, err := json.MarshalIndent(locations, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling locations: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleCombinedResource returns the combined document of a location.
func (s *Server) handleCombinedResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	location := extractLocation(req.Params.URI)
	if location == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Menu.Combined(ctx, location)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling combined document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractLocation extracts the location from a URI like eat://menus/{location}.
func extractLocation(uri string) string {
	const prefix = uriScheme + "menus/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	location := strings.TrimPrefix(uri, prefix)
	if strings.Contains(location, "/") {
		return ""
	}
	return location
}
