package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/eat-cli/internal/logger"
)

// Ensure MenuService implements the interface.
var _ driving.MenuService = (*MenuService)(nil)

// FetchConfig tells the service where publications live.
type FetchConfig struct {
	// StudentenwerkURL is the base URL of the Studentenwerk schedule pages.
	// The page of a canteen is <base>/speiseplan_<id>_-de.html.
	StudentenwerkURL string

	// TextURLs maps a text source to the URL template of its weekly PDF.
	// "{year}" and "{week}" (two digits) are substituted.
	TextURLs map[string]string
}

// MenuService parses, aggregates and publishes menus.
type MenuService struct {
	parsers   driven.MenuParserRegistry
	writer    driven.MenuWriter
	reader    driven.MenuReader
	fetcher   driven.Fetcher
	extractor driven.TextExtractor
	feed      driven.FeedExporter
	fetchCfg  FetchConfig
	now       func() time.Time
}

// NewMenuService creates a new menu service.
// The writer and reader parameters are optional (can be nil).
func NewMenuService(
	parsers driven.MenuParserRegistry,
	writer driven.MenuWriter,
	reader driven.MenuReader,
) *MenuService {
	return &MenuService{
		parsers: parsers,
		writer:  writer,
		reader:  reader,
		now:     time.Now,
	}
}

// SetFetcher enables fetching publications. The extractor converts PDF
// publications of text sources and may be nil when only HTML is fetched.
func (s *MenuService) SetFetcher(fetcher driven.Fetcher, extractor driven.TextExtractor, cfg FetchConfig) {
	s.fetcher = fetcher
	s.extractor = extractor
	s.fetchCfg = cfg
}

// SetFeedExporter enables writing a feed next to the published documents.
func (s *MenuService) SetFeedExporter(feed driven.FeedExporter) {
	s.feed = feed
}

// SetClock replaces the clock used to pick the current week.
func (s *MenuService) SetClock(now func() time.Time) {
	s.now = now
}

// Sources lists the parseable source names.
func (s *MenuService) Sources() []string {
	if s.parsers == nil {
		return nil
	}
	return s.parsers.Sources()
}

// Parse runs the parser of raw.Source and groups the result into weeks.
// Text sources without a location are published under their source name.
func (s *MenuService) Parse(_ context.Context, raw *domain.RawDocument) (*driving.ParseResult, error) {
	if s.parsers == nil {
		return nil, domain.ErrNotImplemented
	}
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	logger.Section("Parse")
	logger.Debug("Source: %s, location: %q, uri: %q", raw.Source, raw.Location, raw.URI)

	parser, err := s.parsers.Get(raw.Source)
	if err != nil {
		return nil, err
	}

	location := raw.Location
	if location == "" && raw.Source != domain.SourceStudentenwerk {
		location = raw.Source
	}
	doc := *raw
	doc.Location = location

	menus, err := parser.Parse(&doc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", raw.Source, err)
	}
	weeks := domain.SortedWeeks(domain.ToWeeks(menus))
	logger.Debug("Parsed %d menus in %d weeks", len(menus), len(weeks))

	return &driving.ParseResult{
		Location: location,
		Menus:    menus,
		Weeks:    weeks,
	}, nil
}

// Publish writes every week of result plus the combined document.
func (s *MenuService) Publish(ctx context.Context, result *driving.ParseResult) error {
	if s.writer == nil {
		return domain.ErrNotImplemented
	}
	if result == nil || result.Location == "" {
		return domain.ErrInvalidInput
	}

	logger.Section("Publish")
	for _, week := range result.Weeks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.writer.WriteWeek(result.Location, week); err != nil {
			return fmt.Errorf("write week %s: %w", week.Key(), err)
		}
		logger.Debug("Wrote %s/%s", result.Location, week.Key())
	}
	combined, err := s.combinedWith(result)
	if err != nil {
		return err
	}
	if err := s.writer.WriteCombined(combined); err != nil {
		return fmt.Errorf("write combined document: %w", err)
	}

	if s.feed != nil {
		if err := s.feed.Export(result.Location, combined.Weeks); err != nil {
			return fmt.Errorf("export feed: %w", err)
		}
	}
	return nil
}

// combinedWith merges the weeks of result into the published combined
// document of its location. Weeks of other files stay reachable.
func (s *MenuService) combinedWith(result *driving.ParseResult) (domain.CombinedDocument, error) {
	if s.reader == nil {
		return result.Combined(), nil
	}
	published, err := s.reader.ReadCombined(result.Location)
	if errors.Is(err, domain.ErrNotFound) {
		return result.Combined(), nil
	}
	if err != nil {
		return domain.CombinedDocument{}, fmt.Errorf("read combined document: %w", err)
	}
	logger.Debug("Merging %d weeks into %d published", len(result.Weeks), len(published.Weeks))
	return published.Merge(result.Weeks), nil
}

// Fetch downloads the current publication of a catalogued location.
func (s *MenuService) Fetch(ctx context.Context, location string) (*domain.RawDocument, error) {
	if s.fetcher == nil {
		return nil, domain.ErrNotImplemented
	}
	canteen, err := domain.LookupCanteen(location)
	if err != nil {
		return nil, err
	}

	logger.Section("Fetch")

	if canteen.Source == domain.SourceStudentenwerk {
		uri := fmt.Sprintf("%s/speiseplan_%d_-de.html", strings.TrimRight(s.fetchCfg.StudentenwerkURL, "/"), canteen.StudentenwerkID)
		raw, err := s.fetcher.Fetch(ctx, uri)
		if err != nil {
			return nil, err
		}
		raw.Source = canteen.Source
		raw.Location = canteen.ID
		return raw, nil
	}

	template, ok := s.fetchCfg.TextURLs[canteen.Source]
	if !ok {
		return nil, fmt.Errorf("%w: no download URL for %s", domain.ErrUnsupportedType, canteen.Source)
	}
	if s.extractor == nil {
		return nil, fmt.Errorf("text extractor: %w", domain.ErrNotImplemented)
	}

	key := domain.WeekKeyOf(s.now())
	raw, err := s.fetcher.Fetch(ctx, ExpandURL(template, key))
	if err != nil {
		return nil, err
	}
	text, err := s.extractor.Extract(ctx, raw.Content)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", raw.URI, err)
	}

	raw.Source = canteen.Source
	raw.Location = canteen.ID
	raw.MIMEType = "text/plain"
	raw.Content = []byte(text)
	raw.Year = key.Year
	raw.Week = key.Number
	return raw, nil
}

// Menu returns the published day of location on date.
func (s *MenuService) Menu(_ context.Context, location string, date time.Time) (*domain.Day, error) {
	if s.reader == nil {
		return nil, domain.ErrNotImplemented
	}
	doc, err := s.reader.ReadCombined(location)
	if err != nil {
		return nil, err
	}
	day, ok := doc.Day(date)
	if !ok {
		return nil, fmt.Errorf("%w: no menu for %s on %s", domain.ErrNotFound, location, date.Format(domain.DateLayout))
	}
	return day, nil
}

// Combined returns the published combined document of location.
func (s *MenuService) Combined(_ context.Context, location string) (*domain.CombinedDocument, error) {
	if s.reader == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.reader.ReadCombined(location)
}

// Locations lists the locations with published menus.
func (s *MenuService) Locations(_ context.Context) ([]string, error) {
	if s.reader == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.reader.Locations()
}

// ExpandURL substitutes the ISO week into a download URL template.
func ExpandURL(template string, key domain.WeekKey) string {
	r := strings.NewReplacer(
		"{year}", strconv.Itoa(key.Year),
		"{week}", fmt.Sprintf("%02d", key.Number),
	)
	return r.Replace(template)
}
