package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driving"
)

// mockMenuService is a mock implementation of driving.MenuService.
type mockMenuService struct {
	day       *domain.Day
	doc       *domain.CombinedDocument
	locations []string
	err       error

	gotLocation string
	gotDate     time.Time
}

func (m *mockMenuService) Parse(_ context.Context, _ *domain.RawDocument) (*driving.ParseResult, error) {
	return nil, m.err
}

func (m *mockMenuService) Publish(_ context.Context, _ *driving.ParseResult) error {
	return m.err
}

func (m *mockMenuService) Fetch(_ context.Context, _ string) (*domain.RawDocument, error) {
	return nil, m.err
}

func (m *mockMenuService) Menu(_ context.Context, location string, date time.Time) (*domain.Day, error) {
	m.gotLocation = location
	m.gotDate = date
	return m.day, m.err
}

func (m *mockMenuService) Combined(_ context.Context, _ string) (*domain.CombinedDocument, error) {
	return m.doc, m.err
}

func (m *mockMenuService) Locations(_ context.Context) ([]string, error) {
	return m.locations, m.err
}

func (m *mockMenuService) Sources() []string {
	return domain.Sources()
}
