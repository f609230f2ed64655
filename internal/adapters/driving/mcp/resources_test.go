package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid menu URI",
			uri:      "eat://menus/mensa-garching",
			expected: "mensa-garching",
		},
		{
			name:     "invalid prefix",
			uri:      "file://menus/mensa-garching",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "eat://menus/mensa-garching/2017",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractLocation(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleMenusResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns published locations", func(t *testing.T) {
		ports := &Ports{Menu: &mockMenuService{locations: []string{"fmi-bistro", "mensa-garching"}}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleMenusResource(ctx, makeReadResourceRequest("eat://menus"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.JSONEq(t, `["fmi-bistro", "mensa-garching"]`, result.Contents[0].Text)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		ports := &Ports{Menu: &mockMenuService{err: errors.New("disk error")}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleMenusResource(ctx, makeReadResourceRequest("eat://menus"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk error")
	})
}

func TestServer_handleCombinedResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns combined document", func(t *testing.T) {
		day := testDay()
		doc := domain.Combine("fmi-bistro", domain.ToWeeks(day.Menus))
		ports := &Ports{Menu: &mockMenuService{doc: &doc}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleCombinedResource(ctx, makeReadResourceRequest("eat://menus/fmi-bistro"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"canteen_id": "fmi-bistro"`)
		assert.Contains(t, result.Contents[0].Text, "Pasta Pomodoro")
	})

	t.Run("unknown location is not found", func(t *testing.T) {
		ports := &Ports{Menu: &mockMenuService{err: domain.ErrNotFound}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleCombinedResource(ctx, makeReadResourceRequest("eat://menus/nowhere"))

		assert.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		ports := &Ports{Menu: &mockMenuService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleCombinedResource(ctx, makeReadResourceRequest("eat://other"))

		assert.Error(t, err)
	})
}
